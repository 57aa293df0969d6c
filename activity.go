package cardxlsx

// ActivityEntries returns the actions the filter keeps, in input order.
func ActivityEntries(card *Card, filter *ActivityFilter, authorField string, dates *DateConverter) ([]Action, error) {
	var out []Action
	for _, a := range card.Actions {
		ok, err := filter.Match(a, authorField, dates)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func renderActivity(c *renderContext) error {
	c.row++
	if len(c.card.Actions) == 0 {
		return nil
	}

	entries, err := ActivityEntries(c.card, c.filter, c.prefs.Labels.UserFullName, c.dates)
	if err != nil {
		return err
	}
	if err := c.write(c.row, ColA, c.prefs.Labels.Activity, StyleHeading); err != nil {
		return err
	}

	for _, a := range entries {
		c.row++
		header := c.dates.DateTime(a.Date) + "\n" + a.Author(c.prefs.Labels.UserFullName)
		if err := c.merge(c.row, ColA, ColB, header, StyleActivityHeader); err != nil {
			return err
		}
		if err := c.merge(c.row, ColC, ColF, a.Text, StyleActivityText); err != nil {
			return err
		}
		if err := c.height(c.row, CommentRowHeight(a.Text, c.base)); err != nil {
			return err
		}
	}
	c.row++
	return nil
}
