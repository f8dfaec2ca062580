package satparse

import (
	"github.com/gofrs/uuid"
)

// VariableFlags controls the lookup/creation behaviour of Context.VariableGet.
type VariableFlags int

const (
	// VariableDefault returns the existing id for name if present, otherwise
	// creates and returns a new id.
	VariableDefault VariableFlags = 0
	// VariableCreate fails with ErrCreateAlreadyExists if name already exists.
	VariableCreate VariableFlags = 1 << 0
	// VariableRef fails with ErrRefNotFound if name does not already exist.
	VariableRef VariableFlags = 1 << 1
	// VariableUnique mints a fresh anonymous id and never touches the name
	// indexes. Requires VariableCreate to be set (see checkVariableFlags).
	VariableUnique VariableFlags = 1 << 2
)

// internEntry is a single interned variable name bound to its dense id. It is
// logically shared by both of Context's indexes (string->id, id->string); a
// reference implementation might track this sharing with a manual refcount
// over two rbtrees, but here it's simply the same *internEntry pointer stored
// under two Go map keys, so there is nothing to refcount or to roll back on
// insert failure (a Go map write cannot fail once the key is known absent).
type internEntry struct {
	text string
	id   int
}

// Context owns the bidirectional variable-name interning table: a dense,
// monotonically increasing id is assigned to each distinct name on first
// reference, and ids can be mapped back to their names. A Context must not
// be used concurrently from more than one goroutine without external
// synchronization (its two indexes are mutated together, not locked).
type Context struct {
	stringIndex map[string]*internEntry
	idIndex     map[int]*internEntry
	nextID      int

	// SessionID correlates a Context (and everything parsed against it) in
	// logs; it plays no role in interning or parsing decisions.
	SessionID uuid.UUID
}

// NewContext creates an empty context: both indexes empty, nextID at zero.
func NewContext() *Context {
	return &Context{
		stringIndex: make(map[string]*internEntry),
		idIndex:     make(map[int]*internEntry),
		SessionID:   uuid.Must(uuid.NewV4()),
	}
}

func checkVariableFlags(flags VariableFlags) error {
	if flags&VariableCreate != 0 && flags&VariableRef != 0 {
		return newError(ErrIncompatibleFlags, Pos{}, "CREATE and REF flags are mutually exclusive")
	}
	if flags&VariableUnique != 0 && flags&VariableCreate == 0 {
		return newError(ErrIncompatibleFlags, Pos{}, "UNIQUE requires CREATE")
	}
	return nil
}

// VariableGet resolves name to a dense variable id under the given flags, or
// returns a non-nil error from the closed ErrorKind enumeration. See
// VariableFlags for the flag semantics.
func (c *Context) VariableGet(name string, flags VariableFlags) (int, error) {
	if err := checkVariableFlags(flags); err != nil {
		return 0, err
	}

	if flags&VariableUnique != 0 {
		id := c.nextID
		c.nextID++
		return id, nil
	}

	if existing, ok := c.stringIndex[name]; ok {
		if flags&VariableCreate != 0 {
			return 0, newError(ErrCreateAlreadyExists, Pos{}, "variable "+name+" already exists")
		}
		return existing.id, nil
	}

	if flags&VariableRef != 0 {
		return 0, newError(ErrRefNotFound, Pos{}, "variable "+name+" not found")
	}

	entry := &internEntry{text: name, id: c.nextID}

	// Insert by id first: ids are unique by construction (nextID has never
	// been issued), so this insert cannot collide. Insert by name second,
	// already checked absent above. Commit by advancing nextID last, so a
	// Context observed mid-call (there is no concurrency story here, but the
	// ordering documents intent) never has nextID outpace either index.
	c.idIndex[entry.id] = entry
	c.stringIndex[entry.text] = entry
	c.nextID++

	return entry.id, nil
}

// VariableName reverse-maps a variable id back to its interned name. UNIQUE
// ids (minted via VariableUnique) never appear here since they're never
// interned under a name.
func (c *Context) VariableName(id int) (string, bool) {
	entry, ok := c.idIndex[id]
	if !ok {
		return "", false
	}
	return entry.text, true
}

// VariableCount returns the number of distinct named entries interned so
// far (excluding anonymous UNIQUE ids, which never create an entry).
func (c *Context) VariableCount() int {
	return len(c.stringIndex)
}
