// Package entity defines the domain models for the catalog feature.
package entity

// ClassInstance is one scheduled occurrence of a class (a specific date and teacher).
// It is owned by exactly one YogaClass.
type ClassInstance struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Teacher string `json:"teacher"`
	Comment string `json:"comment,omitempty"`
}

// YogaClass is a bookable class definition together with its scheduled instances.
// Classes are read-only from the storefront's point of view.
type YogaClass struct {
	ID          int64           `json:"id"`
	Day         string          `json:"day"`
	Time        string          `json:"time"`
	Capacity    int             `json:"capacity"`
	Duration    string          `json:"duration"`
	Price       float64         `json:"price"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Instances   []ClassInstance `json:"instances"`
}

// HasInstances reports whether the class has at least one scheduled instance.
func (c YogaClass) HasInstances() bool {
	return len(c.Instances) > 0
}

// FirstInstance returns the first scheduled instance, if any.
func (c YogaClass) FirstInstance() (ClassInstance, bool) {
	if len(c.Instances) == 0 {
		return ClassInstance{}, false
	}
	return c.Instances[0], true
}

// Clone returns a deep copy so that the caller can hold it as an immutable snapshot.
func (c YogaClass) Clone() YogaClass {
	out := c
	if c.Instances != nil {
		out.Instances = make([]ClassInstance, len(c.Instances))
		copy(out.Instances, c.Instances)
	}
	return out
}
