package interaction

// MenuItemKind names a selectable action in a right-click context menu.
type MenuItemKind int

const (
	ActionSelect MenuItemKind = iota
	ActionViewDetails
	ActionOpenHangar
	ActionPlanTransfer
	ActionProspect
	ActionMoveHere
	ActionViewDisabledHint
)

// MenuItem is one row in a context menu.
type MenuItem struct {
	Kind     MenuItemKind
	Label    string
	Disabled bool
	// ShipID is set for docked-chip rows, one per listed ship; nested
	// right-click on a row opens that ship's own context menu.
	ShipID string
}

// SelectionContext carries the state needed to decide which menu items
// apply: what's currently selected, and whether that selection is a
// docked ship eligible for a transfer/prospect action.
type SelectionContext struct {
	SelectedShipID       string
	SelectedShipDocked   bool
	SelectedShipHasRobot bool // carries a robonaut part
}

// BuildMenu populates a context menu's items for a right-click hit,
// per spec.md §4.6's per-target-type menu contents.
func BuildMenu(hit Hit, dockedShipIDs []string, sel SelectionContext) []MenuItem {
	switch hit.Kind {
	case TargetShip:
		items := []MenuItem{
			{Kind: ActionSelect, Label: "Select"},
			{Kind: ActionViewDetails, Label: "View details"},
			{Kind: ActionOpenHangar, Label: "Open hangar"},
		}
		if sel.SelectedShipDocked {
			items = append(items, MenuItem{Kind: ActionPlanTransfer, Label: "Plan transfer"})
			if sel.SelectedShipHasRobot {
				items = append(items, MenuItem{Kind: ActionProspect, Label: "Prospect"})
			}
		}
		return items

	case TargetDockedChip:
		items := make([]MenuItem, 0, len(dockedShipIDs))
		for _, id := range dockedShipIDs {
			items = append(items, MenuItem{Kind: ActionSelect, Label: id, ShipID: id})
		}
		return items

	case TargetOrbitRing, TargetLocation:
		items := []MenuItem{{Kind: ActionViewDetails, Label: "View details"}}
		if sel.SelectedShipID != "" && sel.SelectedShipDocked {
			items = append(items, MenuItem{Kind: ActionMoveHere, Label: "Move here…"})
		}
		return items

	case TargetBodyGroup:
		items := []MenuItem{{Kind: ActionViewDetails, Label: "View details"}}
		if sel.SelectedShipID != "" {
			items = append(items, MenuItem{Kind: ActionViewDisabledHint, Label: "Move here… (unavailable)", Disabled: true})
		}
		return items

	default:
		return nil
	}
}
