package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the minimum width to show full book IDs.
	LayoutWideWidth = 120
)

// Activity view limits.
const (
	// ActivityLimit is the maximum number of log lines shown in the activity view.
	ActivityLimit = 500
)

// Fixed layout sizes.
const (
	// chromeHeight is the number of rows taken by the header, command bar and footer.
	chromeHeight = 4

	// formHeight is the number of rows taken by the add/edit form.
	formHeight = 7

	// shortIDWidth is the ID column width in compact layouts.
	shortIDWidth = 8
)
