package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// spotItem wraps a Spot for use in a list
type spotItem struct {
	spot models.Spot
}

// FilterValue implements list.Item
func (s spotItem) FilterValue() string {
	return s.spot.Label
}

// Title implements list.DefaultItem
func (s spotItem) Title() string {
	return fmt.Sprintf("%s. %s", s.spot.ID, s.spot.Name)
}

// Description implements list.DefaultItem
func (s spotItem) Description() string {
	return fmt.Sprintf("%s • %s", s.spot.Label, s.spot.Region)
}

// createSpotList creates a list.Model over the spot catalog
func createSpotList(spots []models.Spot, width, height int) list.Model {
	items := make([]list.Item, len(spots))
	for i, spot := range spots {
		items[i] = spotItem{spot: spot}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Beach"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return l
}
