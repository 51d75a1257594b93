package patch

// OpKind is the kind of an [Op].
type OpKind int

const (
	// OpUpdate sets a key to a value, appending it when absent.
	OpUpdate OpKind = iota
	// OpDelete comments out every occurrence of a key.
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "delete"
	default:
		return "update"
	}
}

// Op is a single requested mutation.
type Op struct {
	Key   string
	Value string
	Kind  OpKind
}

// Update returns an [OpUpdate] for key.
func Update(key, value string) Op {
	return Op{Kind: OpUpdate, Key: key, Value: value}
}

// Delete returns an [OpDelete] for key.
func Delete(key string) Op {
	return Op{Kind: OpDelete, Key: key}
}

// Request is an ordered batch of operations. Keys are expected to be
// non-empty and free of whitespace; [Apply] does not check.
type Request []Op

// pendingUpdates maps keys to new values and remembers the order in which
// keys were first requested.
type pendingUpdates struct {
	values map[string]string
	order  []string
}

func newPendingUpdates(req Request) *pendingUpdates {
	p := &pendingUpdates{values: make(map[string]string)}

	for _, op := range req {
		if op.Kind != OpUpdate {
			continue
		}

		if _, ok := p.values[op.Key]; !ok {
			p.order = append(p.order, op.Key)
		}

		p.values[op.Key] = op.Value
	}

	return p
}

// take removes key and returns its value.
func (p *pendingUpdates) take(key string) (string, bool) {
	v, ok := p.values[key]
	if ok {
		delete(p.values, key)
	}

	return v, ok
}

// remaining returns the keys that were never taken, in request order.
func (p *pendingUpdates) remaining() []string {
	keys := make([]string, 0, len(p.values))

	for _, k := range p.order {
		if _, ok := p.values[k]; ok {
			keys = append(keys, k)
		}
	}

	return keys
}

func newDeleteSet(req Request) map[string]struct{} {
	set := make(map[string]struct{})

	for _, op := range req {
		if op.Kind == OpDelete {
			set[op.Key] = struct{}{}
		}
	}

	return set
}
