package notion

import "strings"

// Page is a single record in a database: an opaque id plus named, typed
// properties.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is the tagged union the store uses for one property. On
// reads Type names the kind and exactly one payload field is populated; on
// writes only the payload field for the intended kind is set.
type PropertyValue struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Relation []PageRef     `json:"relation,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Files    []File        `json:"files,omitempty"`
	Number   *float64      `json:"number,omitempty"`
}

type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

type PageRef struct {
	ID string `json:"id"`
}

type File struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

type FileURL struct {
	URL string `json:"url"`
}

// The extractors below are total over any stored shape: a missing property
// (the zero PropertyValue), an empty payload, or a kind other than the one
// asked for yields the zero result instead of an error. The store's schema
// is administered by hand, so drift must not break reads of whole records.

// PlainText returns the concatenated text of a title or rich_text property.
func (p PropertyValue) PlainText() string {
	var parts []RichText
	switch p.Type {
	case "title":
		parts = p.Title
	case "rich_text":
		parts = p.RichText
	default:
		return ""
	}
	var b strings.Builder
	for _, rt := range parts {
		if rt.Text != nil {
			b.WriteString(rt.Text.Content)
		} else {
			b.WriteString(rt.PlainText)
		}
	}
	return b.String()
}

// SelectName returns the chosen enum value of a select property.
func (p PropertyValue) SelectName() string {
	if p.Type != "select" || p.Select == nil {
		return ""
	}
	return p.Select.Name
}

// DateStart returns the start of a date property, "YYYY-MM-DD".
func (p PropertyValue) DateStart() string {
	if p.Type != "date" || p.Date == nil {
		return ""
	}
	return p.Date.Start
}

// FirstRelationID returns the first linked page id of a relation property.
func (p PropertyValue) FirstRelationID() string {
	if p.Type != "relation" || len(p.Relation) == 0 {
		return ""
	}
	return p.Relation[0].ID
}

// EmailValue returns the address of an email property.
func (p PropertyValue) EmailValue() string {
	if p.Type != "email" || p.Email == nil {
		return ""
	}
	return *p.Email
}

// FirstFileURL returns the URL of the first entry of a files property,
// whether uploaded or external.
func (p PropertyValue) FirstFileURL() string {
	if p.Type != "files" || len(p.Files) == 0 {
		return ""
	}
	f := p.Files[0]
	switch {
	case f.Type == "file" && f.File != nil:
		return f.File.URL
	case f.Type == "external" && f.External != nil:
		return f.External.URL
	}
	return ""
}

// NumberValue returns the value of a number property, nil when unset.
func (p PropertyValue) NumberValue() *float64 {
	if p.Type != "number" {
		return nil
	}
	return p.Number
}

// The builders produce exactly the write wrapper each property kind
// requires.

func NewTitle(content string) PropertyValue {
	return PropertyValue{Title: []RichText{{Type: "text", Text: &TextContent{Content: content}}}}
}

func NewRichText(content string) PropertyValue {
	return PropertyValue{RichText: []RichText{{Type: "text", Text: &TextContent{Content: content}}}}
}

func NewSelect(name string) PropertyValue {
	return PropertyValue{Select: &SelectOption{Name: name}}
}

func NewDate(start string) PropertyValue {
	return PropertyValue{Date: &DateValue{Start: start}}
}

func NewRelation(pageID string) PropertyValue {
	return PropertyValue{Relation: []PageRef{{ID: pageID}}}
}
