package flow

// ItemKey identifies a cell.
type ItemKey struct {
	Section, Item int
}

// SupplementaryKey identifies a header or footer.
type SupplementaryKey struct {
	Kind    string
	Section int
}

// Cache memoizes computed attributes. Entries are never invalidated one
// key at a time: a solver pass clears everything, and scrolling with sticky
// headers clears the supplementary half.
type Cache[V any] struct {
	items         map[ItemKey]V
	supplementary map[SupplementaryKey]V
}

// NewCache returns an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{
		items:         make(map[ItemKey]V),
		supplementary: make(map[SupplementaryKey]V),
	}
}

// Item returns the cached attributes for a cell.
func (c *Cache[V]) Item(k ItemKey) (V, bool) {
	v, ok := c.items[k]
	return v, ok
}

// PutItem stores attributes for a cell.
func (c *Cache[V]) PutItem(k ItemKey, v V) {
	c.items[k] = v
}

// Supplementary returns the cached attributes for a header or footer.
func (c *Cache[V]) Supplementary(k SupplementaryKey) (V, bool) {
	v, ok := c.supplementary[k]
	return v, ok
}

// PutSupplementary stores attributes for a header or footer.
func (c *Cache[V]) PutSupplementary(k SupplementaryKey, v V) {
	c.supplementary[k] = v
}

// Clear drops every cached value.
func (c *Cache[V]) Clear() {
	clear(c.items)
	clear(c.supplementary)
}

// ClearSupplementary drops cached headers and footers only.
func (c *Cache[V]) ClearSupplementary() {
	clear(c.supplementary)
}

// Len returns the number of cached cells and supplementary elements.
func (c *Cache[V]) Len() (items, supplementary int) {
	return len(c.items), len(c.supplementary)
}
