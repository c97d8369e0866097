package domain

const (
	MaxItemTitleLen       = 128
	MaxItemDescriptionLen = 500
)

// Item is the transient value object for item validation.
type Item struct {
	Title       string
	Description *string
}

func NewItem(title string, description *string) (Item, error) {
	t, err := NormalizeRequired("title", title, MaxItemTitleLen)
	if err != nil {
		return Item{}, err
	}
	d, err := NormalizeOptional("description", description, MaxItemDescriptionLen)
	if err != nil {
		return Item{}, err
	}
	return Item{Title: t, Description: d}, nil
}
