package seo

// ElementID names one of the head elements the synchronizer owns.
type ElementID int

const (
	Description ElementID = iota
	OGTitle
	OGDescription
	OGURL
	OGImage
	OGType
	TwitterTitle
	TwitterDescription
	TwitterURL
	TwitterImage
	Canonical
)

// Selector locates a head element by tag and one attribute pair; ValueAttr
// is the attribute that carries the element's value.
type Selector struct {
	Tag       string
	Attr      string
	Key       string
	ValueAttr string
}

func metaName(key string) Selector {
	return Selector{Tag: "meta", Attr: "name", Key: key, ValueAttr: "content"}
}

func metaProperty(key string) Selector {
	return Selector{Tag: "meta", Attr: "property", Key: key, ValueAttr: "content"}
}

var selectors = [...]Selector{
	Description:        metaName("description"),
	OGTitle:            metaProperty("og:title"),
	OGDescription:      metaProperty("og:description"),
	OGURL:              metaProperty("og:url"),
	OGImage:            metaProperty("og:image"),
	OGType:             metaProperty("og:type"),
	TwitterTitle:       metaProperty("twitter:title"),
	TwitterDescription: metaProperty("twitter:description"),
	TwitterURL:         metaProperty("twitter:url"),
	TwitterImage:       metaProperty("twitter:image"),
	Canonical:          {Tag: "link", Attr: "rel", Key: "canonical", ValueAttr: "href"},
}

// Elements lists every owned element in declaration order.
func Elements() []ElementID {
	ids := make([]ElementID, len(selectors))
	for i := range selectors {
		ids[i] = ElementID(i)
	}
	return ids
}

func (id ElementID) Selector() Selector {
	return selectors[id]
}

func (id ElementID) String() string {
	if id < 0 || int(id) >= len(selectors) {
		return "unknown"
	}
	return selectors[id].Key
}
