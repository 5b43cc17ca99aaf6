package format

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dimensionKeywords mark attribute keys whose values are centimetre sizes.
var dimensionKeywords = []string{
	"dimension", "size", "width", "height", "depth", "length", "diameter", "thickness",
}

var dimensionSeparator = regexp.MustCompile(`\s*[xX]\s*`)

// FormatAttributeValue formats dimension attribute values with the × separator
// and a trailing "cm" unit. Values that already carry "cm" are left alone, and
// non-dimension keys pass through unchanged.
func FormatAttributeValue(key string, value interface{}) string {
	if value == nil {
		return ""
	}
	str := toString(value)
	lowerKey := strings.ToLower(key)

	for _, kw := range dimensionKeywords {
		if strings.Contains(lowerKey, kw) {
			formatted := dimensionSeparator.ReplaceAllString(str, " × ")
			if !strings.Contains(strings.ToLower(formatted), "cm") {
				return formatted + " cm"
			}
			return formatted
		}
	}
	return str
}

var german = message.NewPrinter(language.German)

// FormatCurrency renders a price in EUR with German number formatting,
// e.g. 1234.5 -> "€1.234,50". Unparsable input renders as "€0,00".
func FormatCurrency(value interface{}) string {
	var num float64
	switch v := value.(type) {
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "€0,00"
		}
		num = parsed
	default:
		return "€0,00"
	}
	return "€" + german.Sprintf("%.2f", num)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
