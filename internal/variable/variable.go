// Package variable implements the snippet variable language: #{...}
// tokens embedded in combo snippets that expand to dynamic values at
// substitution time.
package variable

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/typefast/snip/internal/combo"
)

// ErrCancelled is returned when the user dismisses an #{input:} prompt.
// The whole substitution is abandoned in that case.
var ErrCancelled = errors.New("variable input cancelled")

const (
	customDateTimePrefix = "dateTime:"
	inputPrefix          = "input:"
	envVarPrefix         = "envVar:"
)

const (
	dateLayout     = "Monday, January 2, 2006"
	timeLayout     = "15:04:05"
	dateTimeLayout = time.RFC1123
)

var timeShiftRegexp = regexp.MustCompile(`^dateTime(:(([+-]\d+[yMwdhmsz])+))?:(.*)$`)

type caseChange int

const (
	caseUnchanged caseChange = iota
	caseUpper
	caseLower
)

// InputFunc asks the user for the value of an #{input:} variable. It
// returns false when the user cancels.
type InputFunc func(description string) (string, bool)

// Evaluator expands the variables of a snippet. The clock, clipboard
// and input prompt are injectable so the engine stays testable; zero
// values fall back to the real ones.
type Evaluator struct {
	list  *combo.List
	input InputFunc
	clip  func() (string, error)
	now   func() time.Time

	// User input is asked once per description and reused for every
	// later occurrence during the same substitution.
	knownInputs map[string]string
}

type Option func(*Evaluator)

func WithInput(f InputFunc) Option {
	return func(e *Evaluator) { e.input = f }
}

func WithClipboard(f func() (string, error)) Option {
	return func(e *Evaluator) { e.clip = f }
}

func WithClock(f func() time.Time) Option {
	return func(e *Evaluator) { e.now = f }
}

func NewEvaluator(list *combo.List, opts ...Option) *Evaluator {
	e := &Evaluator{
		list:        list,
		clip:        clipboard.ReadAll,
		now:         time.Now,
		knownInputs: map[string]string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render expands every variable in the snippet of c and returns the
// resulting text.
func (e *Evaluator) Render(c *combo.Combo) (string, error) {
	return e.render(c.Snippet, map[string]struct{}{c.Keyword: {}})
}

// render scans text for #{...} tokens. Inside a token, \} and \\ are
// escapes, so a variable parameter may contain closing braces.
func (e *Evaluator) render(text string, forbidden map[string]struct{}) (string, error) {
	var out strings.Builder
	for i := 0; i < len(text); {
		start := strings.Index(text[i:], "#{")
		if start < 0 {
			out.WriteString(text[i:])
			break
		}
		out.WriteString(text[i : i+start])
		i += start + 2

		end := -1
		for j := i; j < len(text); j++ {
			if text[j] == '\\' {
				j++
				continue
			}
			if text[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			out.WriteString("#{")
			out.WriteString(text[i:])
			break
		}

		value, err := e.evaluate(text[i:end], forbidden)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
		i = end + 1
	}
	return out.String(), nil
}

// evaluate resolves a single variable, given without the enclosing #{}.
// Unrecognized variables are put back verbatim so a typo does not eat
// part of the snippet.
func (e *Evaluator) evaluate(variable string, forbidden map[string]struct{}) (string, error) {
	switch {
	case variable == "clipboard":
		text, err := e.clip()
		if err != nil {
			return "", nil
		}
		return text, nil

	case variable == "discordemoji":
		text, err := e.clip()
		if err != nil {
			return "", nil
		}
		return discordEmojis(text), nil

	case variable == "date":
		return e.now().Format(dateLayout), nil

	case variable == "time":
		return e.now().Format(timeLayout), nil

	case variable == "dateTime":
		return e.now().Format(dateTimeLayout), nil

	case strings.HasPrefix(variable, customDateTimePrefix):
		return e.evaluateDateTime(variable), nil

	case strings.HasPrefix(variable, "combo:"):
		return e.evaluateCombo(variable, caseUnchanged, forbidden)

	case strings.HasPrefix(variable, "upper:"):
		return e.evaluateCombo(variable, caseUpper, forbidden)

	case strings.HasPrefix(variable, "lower:"):
		return e.evaluateCombo(variable, caseLower, forbidden)

	case strings.HasPrefix(variable, "trim:"):
		value, err := e.evaluateCombo(variable, caseUnchanged, forbidden)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(value), nil

	case strings.HasPrefix(variable, inputPrefix):
		return e.evaluateInput(variable)

	case strings.HasPrefix(variable, envVarPrefix):
		return os.Getenv(resolveEscapes(variable[len(envVarPrefix):])), nil
	}

	return fmt.Sprintf("#{%s}", variable), nil
}

func (e *Evaluator) evaluateDateTime(variable string) string {
	match := timeShiftRegexp.FindStringSubmatch(variable)
	if match == nil {
		return ""
	}

	when := e.now()
	if match[2] != "" {
		when = shiftTime(when, match[2])
	}

	layout := resolveEscapes(match[4])
	if layout == "" {
		layout = dateTimeLayout
	}
	return when.Format(layout)
}

// evaluateCombo resolves the #{combo:}, #{upper:}, #{lower:} and
// #{trim:} variables, which all substitute another combo by keyword.
// The forbidden set carries the keywords already being expanded so
// mutually referencing combos cannot recurse forever.
func (e *Evaluator) evaluateCombo(variable string, change caseChange, forbidden map[string]struct{}) (string, error) {
	fallback := fmt.Sprintf("#{%s}", variable)
	sep := strings.Index(variable, ":")
	if sep < 0 {
		return "", nil
	}
	keyword := resolveEscapes(variable[sep+1:])
	if _, ok := forbidden[keyword]; ok {
		return fallback, nil
	}
	target, ok := e.list.FindByKeyword(keyword)
	if !ok {
		return fallback, nil
	}

	sub := map[string]struct{}{keyword: {}}
	for k := range forbidden {
		sub[k] = struct{}{}
	}
	value, err := e.render(target.Snippet, sub)
	if err != nil {
		return "", err
	}

	switch change {
	case caseUpper:
		return strings.ToUpper(value), nil
	case caseLower:
		return strings.ToLower(value), nil
	default:
		return value, nil
	}
}

func (e *Evaluator) evaluateInput(variable string) (string, error) {
	description := variable[len(inputPrefix):]
	if value, ok := e.knownInputs[description]; ok {
		return value, nil
	}
	if e.input == nil {
		return "", ErrCancelled
	}
	value, ok := e.input(resolveEscapes(description))
	if !ok {
		return "", ErrCancelled
	}
	e.knownInputs[description] = value
	return value, nil
}

// resolveEscapes resolves the \\ and \} escapes in a variable
// parameter.
func resolveEscapes(param string) string {
	param = strings.ReplaceAll(param, `\\`, `\`)
	return strings.ReplaceAll(param, `\}`, `}`)
}

var shiftRegexp = regexp.MustCompile(`([+-])(\d+)([yMwdhmsz])`)

// shiftTime applies a shift string such as +1d-4w+11h to t, one unit
// at a time.
func shiftTime(t time.Time, shifts string) time.Time {
	for _, match := range shiftRegexp.FindAllStringSubmatch(shifts, -1) {
		value, err := strconv.ParseInt(match[2], 10, 64)
		if err != nil {
			continue
		}
		if match[1] == "-" {
			value = -value
		}
		switch match[3] {
		case "y":
			t = t.AddDate(int(value), 0, 0)
		case "M":
			t = t.AddDate(0, int(value), 0)
		case "w":
			t = t.AddDate(0, 0, int(value)*7)
		case "d":
			t = t.AddDate(0, 0, int(value))
		case "h":
			t = t.Add(time.Duration(value) * time.Hour)
		case "m":
			t = t.Add(time.Duration(value) * time.Minute)
		case "s":
			t = t.Add(time.Duration(value) * time.Second)
		case "z":
			t = t.Add(time.Duration(value) * time.Millisecond)
		}
	}
	return t
}

var emojiSubstitutions = map[rune]string{
	'0': ":zero: ", '1': ":one: ", '2': ":two: ", '3': ":three: ",
	'4': ":four: ", '5': ":five: ", '6': ":six: ", '7': ":seven: ",
	'8': ":eight: ", '9': ":nine: ", '!': ":exclamation: ", '?': ":question: ",
}

// discordEmojis converts text to a sequence of Discord emoji
// shortcodes. A trailing space follows every emoji so that Discord
// does not merge adjacent letters into flag emoji.
func discordEmojis(text string) string {
	var out strings.Builder
	for _, r := range text {
		l := asciiLower(r)
		if l >= 'a' && l <= 'z' {
			fmt.Fprintf(&out, ":regional_indicator_%c: ", l)
			continue
		}
		if subst, ok := emojiSubstitutions[r]; ok {
			out.WriteString(subst)
			continue
		}
		out.WriteString("        ")
	}
	return out.String()
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
