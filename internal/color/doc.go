// Package color holds the terminal palette used by capex output.
//
// Colors are lipgloss adaptive colors with a light and a dark variant.
// Initialize selects the variant; callers that never call it get lipgloss's
// own background detection.
//
//	color.Initialize(true)
//	fmt.Println(color.Badge("set"))
//
// Badge renders slot states and policies. Truncate shortens cell content to a
// terminal width, counting wide runes as two columns.
package color
