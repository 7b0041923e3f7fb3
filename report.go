package banbridge

import (
	"fmt"
	"sort"
	"strings"
)

// FormatType tells the analytics host how to render a number.
type FormatType int

// Format types.
const (
	FormatNone FormatType = iota
	FormatDateYear
	FormatDateSecond
	FormatTimeMillis
)

// String returns a string of said FormatType.
func (f FormatType) String() string {
	switch f {
	case FormatDateYear:
		return "DATE_YEAR"
	case FormatDateSecond:
		return "DATE_SECOND"
	case FormatTimeMillis:
		return "TIME_MILLISECONDS"
	default:
		return "NONE"
	}
}

// ValueKind is the type of a report value.
type ValueKind int

// Value kinds.
const (
	KindBoolean ValueKind = iota + 1
	KindString
	KindNumber
)

// CallEvent is a host lifecycle event on which the reporting methods should be called.
type CallEvent int

// Call events.
const (
	CallPlayerJoin CallEvent = iota + 1
	CallPlayerLeave
	CallServerPeriodical
	CallServerRegister
)

// String returns a string of said CallEvent.
func (e CallEvent) String() string {
	switch e {
	case CallPlayerJoin:
		return "player_join"
	case CallPlayerLeave:
		return "player_leave"
	case CallServerPeriodical:
		return "server_periodical"
	case CallServerRegister:
		return "server_extension_register"
	default:
		return "unknown"
	}
}

// ParseCallEvent parses the configuration name of a [CallEvent].
func ParseCallEvent(name string) (CallEvent, error) {
	for _, event := range []CallEvent{CallPlayerJoin, CallPlayerLeave, CallServerPeriodical, CallServerRegister} {
		if strings.EqualFold(strings.TrimSpace(name), event.String()) {
			return event, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCallEvent, name)
}

// PluginInfo describes the extension to the analytics host.
type PluginInfo struct {
	Name string // Name of the extension.
	Icon Icon   // Icon of the extension.
}

// FieldInfo is the presentation metadata of a report field.
type FieldInfo struct {
	Name        string     // Name is the stable key of the field.
	Text        string     // Text is the label shown to users.
	Description string     // Description explains the field.
	Priority    int        // Priority orders fields, higher first.
	Icon        Icon       // Icon rendered next to the value.
	Format      FormatType // Format of numeric values.
	PlayerName  bool       // PlayerName marks a value that links to a player page.
}

// ReportField is a single labeled, typed value of a report.
type ReportField struct {
	FieldInfo
	Value any // Value is a bool, string or int64.
}

// Kind returns the type of the field's value.
func (f *ReportField) Kind() ValueKind {
	switch f.Value.(type) {
	case bool:
		return KindBoolean
	case string:
		return KindString
	case int64:
		return KindNumber
	default:
		return 0
	}
}

// Report is the set of fields reported for a player, in insertion order.
// The zero value is an empty report ready to use.
type Report struct {
	fields []*ReportField
	index  map[string]int
}

func (r *Report) add(info FieldInfo, value any) *Report {
	if r.index == nil {
		r.index = map[string]int{}
	}

	field := &ReportField{FieldInfo: info, Value: value}
	if i, ok := r.index[info.Name]; ok {
		r.fields[i] = field
		return r
	}

	r.index[info.Name] = len(r.fields)
	r.fields = append(r.fields, field)

	return r
}

// AddBoolean adds a boolean field, replacing a field of the same name.
//
// Returns:
//   - *Report: The report for method chaining.
func (r *Report) AddBoolean(info FieldInfo, value bool) *Report {
	return r.add(info, value)
}

// AddString adds a string field, replacing a field of the same name.
//
// Returns:
//   - *Report: The report for method chaining.
func (r *Report) AddString(info FieldInfo, value string) *Report {
	return r.add(info, value)
}

// AddNumber adds a numeric field, replacing a field of the same name.
//
// Returns:
//   - *Report: The report for method chaining.
func (r *Report) AddNumber(info FieldInfo, value int64) *Report {
	return r.add(info, value)
}

// Get returns the field with the given name.
func (r *Report) Get(name string) (*ReportField, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}

	return r.fields[i], true
}

// Has reports whether a field with the given name exists.
func (r *Report) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of fields.
func (r *Report) Len() int {
	return len(r.fields)
}

// Names returns the field names in insertion order.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.fields))
	for _, field := range r.fields {
		names = append(names, field.Name)
	}

	return names
}

// Fields returns the fields in insertion order.
func (r *Report) Fields() []*ReportField {
	return append([]*ReportField(nil), r.fields...)
}

// Sorted returns the fields in descending priority, the order the host displays them in.
func (r *Report) Sorted() []*ReportField {
	fields := r.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Priority > fields[j].Priority
	})

	return fields
}

// NewReport creates a new empty [Report].
func NewReport() *Report {
	return &Report{index: map[string]int{}}
}
