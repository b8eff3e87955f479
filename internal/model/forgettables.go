package model

// Forgettables holds the merged forget-sets. It is built once at launch and
// only read afterwards.
type Forgettables struct {
	events    map[int]struct{}
	mail      map[string]struct{}
	responses map[int]struct{}
}

// ForgettablesBuilder accumulates documents into a Forgettables.
type ForgettablesBuilder struct {
	f *Forgettables
}

// NewForgettablesBuilder returns an empty builder.
func NewForgettablesBuilder() *ForgettablesBuilder {
	return &ForgettablesBuilder{f: &Forgettables{
		events:    make(map[int]struct{}),
		mail:      make(map[string]struct{}),
		responses: make(map[int]struct{}),
	}}
}

// Add unions a document into the sets.
func (b *ForgettablesBuilder) Add(doc Document) {
	for _, id := range doc.RepeatEvents {
		b.f.events[id] = struct{}{}
	}
	for _, key := range doc.RepeatMail {
		b.f.mail[key] = struct{}{}
	}
	for _, id := range doc.RepeatResponse {
		b.f.responses[id] = struct{}{}
	}
}

// Build returns the accumulated sets. The builder must not be used afterwards.
func (b *ForgettablesBuilder) Build() *Forgettables {
	f := b.f
	b.f = nil
	return f
}

// EmptyForgettables returns a Forgettables with no entries.
func EmptyForgettables() *Forgettables {
	return NewForgettablesBuilder().Build()
}

func (f *Forgettables) HasEvent(id int) bool {
	_, ok := f.events[id]
	return ok
}

func (f *Forgettables) HasMail(key string) bool {
	_, ok := f.mail[key]
	return ok
}

func (f *Forgettables) HasResponse(id int) bool {
	_, ok := f.responses[id]
	return ok
}

func (f *Forgettables) EventCount() int    { return len(f.events) }
func (f *Forgettables) MailCount() int     { return len(f.mail) }
func (f *Forgettables) ResponseCount() int { return len(f.responses) }
