package views

import "github.com/a-h/templ"

// Button is an action rendered by ErrorPanel.
type Button struct {
	ID      string
	Label   string
	Primary bool
}

// Spinner is the centered loading indicator.
func Spinner(message string) templ.Component {
	return Markup(`<div class="py-20 bg-gray-50 flex items-center justify-center">`+
		`<div class="text-center">`+
		`<div class="animate-spin rounded-full h-12 w-12 border-b-2 border-blue-600 mx-auto mb-4"></div>`+
		`<p class="text-gray-600">%s</p>`+
		`</div></div>`, message)
}

// InlineLoading is the small indicator shown under a list while more items load.
func InlineLoading(message string) templ.Component {
	return Markup(`<div class="text-center py-4 loading-indicator">`+
		`<span class="text-sm text-gray-600">%s</span></div>`, message)
}

// ErrorPanel shows a title, a message and optional action buttons.
func ErrorPanel(title, message string, buttons ...Button) templ.Component {
	return Join(
		Markup(`<div class="flex flex-col items-center justify-center py-12 px-4 error-panel">`+
			`<div class="w-16 h-16 bg-red-100 rounded-full flex items-center justify-center mb-4">!</div>`+
			`<h3 class="text-lg font-semibold text-gray-900 mb-2">%s</h3>`+
			`<p class="text-sm text-gray-600 text-center mb-6 error-message">%s</p>`+
			`<div class="flex gap-2 justify-center">`, title, message),
		Each(buttons, func(_ int, b Button) templ.Component {
			class := "px-6 py-2 bg-gray-600 text-white rounded-lg"
			if b.Primary {
				class = "px-6 py-2 bg-blue-600 text-white rounded-lg"
			}
			return Markup(`<button id="%s" class="%s">%s</button>`, b.ID, class, b.Label)
		}),
		Markup(`</div></div>`),
	)
}

// ProductSkeleton is the placeholder card shown while products load.
func ProductSkeleton() templ.Component {
	return Markup(`<div class="bg-white rounded-lg shadow-sm border border-gray-200 overflow-hidden animate-pulse product-skeleton">` +
		`<div class="aspect-square bg-gray-200"></div>` +
		`<div class="p-3"><div class="h-4 bg-gray-200 rounded mb-2"></div>` +
		`<div class="h-3 bg-gray-200 rounded w-2/3 mb-2"></div>` +
		`<div class="h-5 bg-gray-200 rounded w-1/2"></div></div></div>`)
}

// Slot is an empty mount point for a child component.
func Slot(id, class string) templ.Component {
	if class == "" {
		return Markup(`<div id="%s"></div>`, id)
	}
	return Markup(`<div id="%s" class="%s"></div>`, id, class)
}
