package cardxlsx

// renderDescription writes the heading one row below the header, then the
// description wrapped in a merged A:F block sized to its estimated lines.
func renderDescription(c *renderContext) error {
	heading := c.row + 1
	if err := c.write(heading, ColA, c.prefs.Labels.Description, StyleHeading); err != nil {
		return err
	}

	body := heading + 1
	if err := c.band(body, c.card.Desc, StyleDescription); err != nil {
		return err
	}
	if err := c.height(body, DescriptionRowHeight(c.card.Desc, c.base)); err != nil {
		return err
	}

	// one blank row before the checklists
	c.row = body + 2
	return nil
}
