package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
	Now                func() time.Time
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"relativeTime": func(ts any) string { return uiutil.FriendlyRelativeTime(toTime(ts), now()) },
		"dateLabel":    func(ts any) string { return uiutil.FormatFriendlyDate(toTime(ts)) },
		"timeTag":      timeTag,
		"add":          func(a, b int) int { return a + b },
		"contains":     strings.Contains,
		"join":         strings.Join,
		"formatNumber": FormatNumber,
		"amount":       Amount,
		"truncateText": TruncateText,
		"humanize":     func(v any) string { return model.Humanize(fmt.Sprint(v)) },
		"statusLabel":  func(kind string, v any) string { return StatusFor(kind, v).Label },
		"statusTone":   func(kind string, v any) string { return string(StatusFor(kind, v).Tone) },
		"statusBadge":  StatusBadge,
		"fieldError":   fieldError,
		"formValue":    formValue,
		"dict":         dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - output of our own html/template execution, already escaped.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// StatusFor maps a status value of the named kind ("application", "vacancy",
// "interview", "decision") to its display.
func StatusFor(kind string, v any) model.Display {
	return model.StatusDisplay(model.StatusKind(kind), fmt.Sprint(v))
}

// StatusBadge renders a status pill. The label is escaped; the tone is one of
// the fixed model tones.
func StatusBadge(kind string, v any) template.HTML {
	d := StatusFor(kind, v)
	// #nosec G203 - label escaped, tone from a closed set
	return template.HTML(fmt.Sprintf(
		`<span class="badge badge-%s" data-status="%s">%s</span>`,
		d.Tone,
		template.HTMLEscapeString(strings.ToUpper(fmt.Sprint(v))),
		template.HTMLEscapeString(d.Label),
	))
}

func toTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case model.Date:
		return v.Time
	case *model.Date:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

func friendlyTime(ts any) string {
	return uiutil.FormatFriendlyDateTime(toTime(ts))
}

func timeTag(ts any) template.HTML {
	t0 := toTime(ts)
	if t0.IsZero() {
		return ""
	}
	// #nosec G203 - constructed from escaped values only
	return template.HTML(fmt.Sprintf(
		`<time datetime="%s" title="%s">%s</time>`,
		t0.UTC().Format(time.RFC3339),
		template.HTMLEscapeString(t0.Local().Format(time.RFC1123)),
		template.HTMLEscapeString(uiutil.FormatFriendlyDateTime(t0)),
	))
}

// FormatNumber formats integers with comma separators for thousands.
// Other values are printed as-is.
func FormatNumber(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	default:
		return fmt.Sprint(v)
	}

	neg := n < 0
	s := strconv.FormatInt(n, 10)
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Amount formats a money value with thousands separators, dropping the
// fraction when it is zero. Nil pointers yield "".
func Amount(v any) string {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case *float64:
		if x == nil {
			return ""
		}
		f = *x
	default:
		return fmt.Sprint(v)
	}
	whole := int64(f)
	if float64(whole) == f {
		return FormatNumber(whole)
	}
	return FormatNumber(whole) + strings.TrimPrefix(strconv.FormatFloat(f-float64(whole), 'f', 2, 64), "0")
}

// TruncateText truncates a string to a maximum number of runes (not bytes),
// adding an ellipsis when truncated.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	return uiutil.TruncateWithEllipsis(s, maxLen)
}

func fieldError(errs any, field string) string {
	m, ok := errs.(map[string]string)
	if !ok {
		return ""
	}
	return m[field]
}

// formValue reads a submitted or prefilled value; a missing form yields "".
func formValue(form any, field string) string {
	m, ok := form.(map[string]string)
	if !ok {
		return ""
	}
	return m[field]
}

// dict builds a map from alternating key/value arguments so partials can take
// more than one value.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict requires an even number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
