package catalog

import (
	"fmt"

	"pulsecheck/internal/model"
)

// Catalog is the immutable set of question templates loaded once at
// process start. It is safe for unsynchronized concurrent reads.
type Catalog struct {
	templates []model.QuestionTemplate
	byID      map[string]*model.QuestionTemplate
	curated   []model.QuestionTemplate
}

// New validates the given templates and builds a catalog. A malformed
// template rejects the whole load; selection never sees invalid entries.
func New(templates []model.QuestionTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]model.QuestionTemplate, 0, len(templates)),
		byID:      make(map[string]*model.QuestionTemplate, len(templates)),
	}

	for i := range templates {
		t := templates[i]
		if err := validate(&t); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", t.ID)
		}
		c.templates = append(c.templates, t)
		c.byID[t.ID] = &c.templates[len(c.templates)-1]
		if t.Curated {
			c.curated = append(c.curated, t)
		}
	}

	if len(c.templates) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return c, nil
}

func validate(t *model.QuestionTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if t.Text == "" {
		return fmt.Errorf("missing text")
	}
	if t.Category == "" {
		return fmt.Errorf("missing category")
	}
	if t.Priority < 1 || t.Priority > 3 {
		return fmt.Errorf("priority %d outside 1..3", t.Priority)
	}
	switch t.Frequency {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyBiWeekly, model.FrequencyContextual:
	default:
		return fmt.Errorf("unknown frequency type %q", t.Frequency)
	}
	return nil
}

// All returns every template in catalog order
func (c *Catalog) All() []model.QuestionTemplate {
	return c.templates
}

// Curated returns the smaller rotation pool used by mix mode
func (c *Catalog) Curated() []model.QuestionTemplate {
	return c.curated
}

// Get looks up a template by id
func (c *Catalog) Get(id string) (*model.QuestionTemplate, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len reports the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}
