package domain

// FilterAll is the wildcard accepted by status and priority filters.
const FilterAll = "all"

// StatusFilter is a TicketStatus or the "all" wildcard.
type StatusFilter string

// PriorityFilter is a TicketPriority or the "all" wildcard.
type PriorityFilter string

const (
	AnyStatus   StatusFilter   = FilterAll
	AnyPriority PriorityFilter = FilterAll
)

// ParseStatusFilter accepts "", "all" or a known status.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	if raw == "" || raw == FilterAll {
		return AnyStatus, nil
	}
	status, err := ParseStatus(raw)
	if err != nil {
		return "", err
	}
	return StatusFilter(status), nil
}

// ParsePriorityFilter accepts "", "all" or a known priority.
func ParsePriorityFilter(raw string) (PriorityFilter, error) {
	if raw == "" || raw == FilterAll {
		return AnyPriority, nil
	}
	priority, err := ParsePriority(raw)
	if err != nil {
		return "", err
	}
	return PriorityFilter(priority), nil
}

// StatusFilterFor narrows the filter to one status.
func StatusFilterFor(status TicketStatus) StatusFilter {
	return StatusFilter(status)
}

// PriorityFilterFor narrows the filter to one priority.
func PriorityFilterFor(priority TicketPriority) PriorityFilter {
	return PriorityFilter(priority)
}

// IsAll reports whether the filter is the wildcard. The zero value counts as the wildcard.
func (f StatusFilter) IsAll() bool {
	return f == "" || f == AnyStatus
}

// IsAll reports whether the filter is the wildcard. The zero value counts as the wildcard.
func (f PriorityFilter) IsAll() bool {
	return f == "" || f == AnyPriority
}

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status TicketStatus) bool {
	return f.IsAll() || TicketStatus(f) == status
}

// Matches reports whether priority passes the filter.
func (f PriorityFilter) Matches(priority TicketPriority) bool {
	return f.IsAll() || TicketPriority(f) == priority
}

// Normalize maps the zero value to the explicit wildcard.
func (f StatusFilter) Normalize() StatusFilter {
	if f.IsAll() {
		return AnyStatus
	}
	return f
}

// Normalize maps the zero value to the explicit wildcard.
func (f PriorityFilter) Normalize() PriorityFilter {
	if f.IsAll() {
		return AnyPriority
	}
	return f
}

// StatusFilterOptions lists the wildcard followed by every status.
func StatusFilterOptions() []StatusFilter {
	opts := []StatusFilter{AnyStatus}
	for _, s := range Statuses() {
		opts = append(opts, StatusFilter(s))
	}
	return opts
}

// PriorityFilterOptions lists the wildcard followed by every priority.
func PriorityFilterOptions() []PriorityFilter {
	opts := []PriorityFilter{AnyPriority}
	for _, p := range Priorities() {
		opts = append(opts, PriorityFilter(p))
	}
	return opts
}
