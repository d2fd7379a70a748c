package store

// AddHydration appends a signed hydration entry for today and refreshes the
// daily total. A negative delta models a correction; the total is the plain
// sum of all entries for the day and this layer does not floor it at zero.
func (s *Store) AddHydration(delta float64) error {
	if delta == 0 {
		return &ValidationError{Field: "amount", Reason: "must be non-zero"}
	}
	date := today()
	if _, err := s.gw.InsertHydration(delta, date); err != nil {
		return err
	}
	return s.LoadDailyHydration()
}

// LoadDailyHydration re-fetches today's summed total into the snapshot.
func (s *Store) LoadDailyHydration() error {
	total, err := s.gw.HydrationTotal(today())
	if err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.DailyHydration = total
	})
	return nil
}
