package color

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
)

func wrap(code, s string) string {
	return fmt.Sprintf("%s%s%s", code, s, Reset)
}

func BlueString(s string) string {
	return wrap(Blue, s)
}

func YellowString(s string) string {
	return wrap(Yellow, s)
}

func GreenString(s string) string {
	return wrap(Green, s)
}

func RedString(s string) string {
	return wrap(Red, s)
}

// StatusString colors s by HTTP status class: 2xx green, 4xx yellow, 5xx red.
func StatusString(status int, s string) string {
	switch {
	case status >= 500:
		return RedString(s)
	case status >= 400:
		return YellowString(s)
	default:
		return GreenString(s)
	}
}
