package model

// CurrentVersion is the schema version written by a fresh document and the
// target of the last registered migration.
const CurrentVersion = "2.0.0"

type Settings struct {
	StartOfWeek        int    `json:"startOfWeek"`
	DefaultWaterGoal   int    `json:"defaultWaterGoal"`
	DefaultCalorieGoal int    `json:"defaultCalorieGoal"`
	Notifications      bool   `json:"notifications"`
	Theme              string `json:"theme"`
}

// Document is the whole persisted state: one JSON file, named collections
// plus a few scalar keys. Every mutation rewrites it in full.
type Document struct {
	Version       string         `json:"version"`
	CurrentWeekID *int64         `json:"currentWeekId"`
	Weeks         []Week         `json:"weeks"`
	Tasks         []Task         `json:"tasks"`
	Meals         []Meal         `json:"meals"`
	DailyData     []DailyData    `json:"dailyData"`
	TaskTemplates []TaskTemplate `json:"taskTemplates"`
	Settings      Settings       `json:"settings"`
	MigratedAt    string         `json:"migratedAt,omitempty"`
	MigratedFrom  string         `json:"migratedFrom,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		StartOfWeek:        1,
		DefaultWaterGoal:   8,
		DefaultCalorieGoal: 2000,
		Notifications:      true,
		Theme:              "light",
	}
}

func DefaultDocument() *Document {
	return &Document{
		Version:       CurrentVersion,
		CurrentWeekID: nil,
		Weeks:         []Week{},
		Tasks:         []Task{},
		Meals:         []Meal{},
		DailyData:     []DailyData{},
		TaskTemplates: []TaskTemplate{},
		Settings:      DefaultSettings(),
	}
}

// Clone returns a deep copy, so snapshots handed out by the storage layer
// cannot alias the live document through slice or pointer fields.
func (d *Document) Clone() *Document {
	c := *d
	c.CurrentWeekID = cloneInt64Ptr(d.CurrentWeekID)

	c.Weeks = make([]Week, len(d.Weeks))
	for i, w := range d.Weeks {
		if w.ArchivedAt != nil {
			t := *w.ArchivedAt
			w.ArchivedAt = &t
		}
		c.Weeks[i] = w
	}

	c.Tasks = make([]Task, len(d.Tasks))
	for i, t := range d.Tasks {
		t.EstimatedMinutes = cloneIntPtr(t.EstimatedMinutes)
		t.Notes = cloneStringPtr(t.Notes)
		c.Tasks[i] = t
	}

	c.Meals = make([]Meal, len(d.Meals))
	for i, m := range d.Meals {
		m.Notes = cloneStringPtr(m.Notes)
		c.Meals[i] = m
	}

	c.DailyData = make([]DailyData, len(d.DailyData))
	copy(c.DailyData, d.DailyData)

	c.TaskTemplates = make([]TaskTemplate, len(d.TaskTemplates))
	for i, tpl := range d.TaskTemplates {
		tpl.EstimatedMinutes = cloneIntPtr(tpl.EstimatedMinutes)
		c.TaskTemplates[i] = tpl
	}

	return &c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
