package model

// ImageRecord represents a single image in the gallery catalog
type ImageRecord struct {
	ID    int
	URL   string
	Title string
	IsFav bool // the only mutable field; flipped by favorite toggles
}

// Catalog is the fixed ordered list of images shown by the app.
// It is constructed once at startup and never resized; ids are unique
// and stable for the process lifetime.
type Catalog struct {
	records []*ImageRecord
}

// NewCatalog creates a catalog from the given records
func NewCatalog(records []*ImageRecord) *Catalog {
	return &Catalog{records: records}
}

// Len returns the number of records in the catalog
func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns the record at position i, wrapping modulo the catalog length.
// Returns nil for an empty catalog.
func (c *Catalog) At(i int) *ImageRecord {
	n := len(c.records)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return c.records[i]
}

// ByID returns the record with the given id, or nil if no such record exists
func (c *Catalog) ByID(id int) *ImageRecord {
	for _, rec := range c.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// Favorites returns the favorited records, filtered fresh on every call.
// The result is a projection of current IsFav flags, never cached.
func (c *Catalog) Favorites() []*ImageRecord {
	var favs []*ImageRecord
	for _, rec := range c.records {
		if rec.IsFav {
			favs = append(favs, rec)
		}
	}
	return favs
}

// FavoriteIDs returns the ids of all favorited records in catalog order
func (c *Catalog) FavoriteIDs() []int {
	ids := make([]int, 0, len(c.records))
	for _, rec := range c.records {
		if rec.IsFav {
			ids = append(ids, rec.ID)
		}
	}
	return ids
}

// ApplyFavorites sets IsFav on every record from the given id set.
// Records not present in ids have their flag cleared.
func (c *Catalog) ApplyFavorites(ids []int) {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for _, rec := range c.records {
		rec.IsFav = set[rec.ID]
	}
}

// ToggleFavorite flips the favorite flag of the record with the given id.
// Returns the new flag value and whether the record was found; a stale id
// is a no-op.
func (c *Catalog) ToggleFavorite(id int) (bool, bool) {
	rec := c.ByID(id)
	if rec == nil {
		return false, false
	}
	rec.IsFav = !rec.IsFav
	return rec.IsFav, true
}

// DefaultCatalog returns the built-in image set shown on first launch
func DefaultCatalog() *Catalog {
	return NewCatalog([]*ImageRecord{
		{ID: 1, URL: "https://picsum.photos/id/1015/900/1200.jpg", Title: "River Valley"},
		{ID: 2, URL: "https://picsum.photos/id/1016/900/1200.jpg", Title: "Canyon Walls"},
		{ID: 3, URL: "https://picsum.photos/id/1018/900/1200.jpg", Title: "Mountain Lake"},
		{ID: 4, URL: "https://picsum.photos/id/1025/900/1200.jpg", Title: "Pug Portrait"},
		{ID: 5, URL: "https://picsum.photos/id/1039/900/1200.jpg", Title: "Waterfall Mist"},
		{ID: 6, URL: "https://picsum.photos/id/1043/900/1200.jpg", Title: "City Lights"},
		{ID: 7, URL: "https://picsum.photos/id/1059/900/1200.jpg", Title: "Harbor Morning"},
		{ID: 8, URL: "https://picsum.photos/id/1080/900/1200.jpg", Title: "Strawberry Close Up"},
	})
}
