package team

// Team is one row of the team dimension.
type Team struct {
	ID        int64
	Name      string
	Location  string
	StadiumID *int64
}

// Dimension is the ordered team dimension. Order is the iteration order used
// by substring fallbacks, so it must stay stable.
type Dimension struct {
	Teams []Team
}

func (d Dimension) MaxID() int64 {
	var maxID int64
	for _, t := range d.Teams {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

// Extend appends new names with ids continuing after MaxID, in the given
// order, and returns the appended rows.
func (d *Dimension) Extend(names []string) []Team {
	next := d.MaxID()
	added := make([]Team, 0, len(names))
	for _, name := range names {
		next++
		added = append(added, Team{ID: next, Name: name})
	}
	d.Teams = append(d.Teams, added...)
	return added
}
