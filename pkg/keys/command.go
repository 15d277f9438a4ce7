package keys

// Command is a canonical command that one or more keys map to.
type Command string

const (
	CommandUp       Command = "up"
	CommandDown     Command = "down"
	CommandPageUp   Command = "page up"
	CommandPageDown Command = "page down"
	CommandHome     Command = "home"
	CommandEnd      Command = "end"
)

// ScrollCommands lists the commands scrolling widgets respond to, in help
// order.
var ScrollCommands = []Command{
	CommandUp,
	CommandDown,
	CommandPageUp,
	CommandPageDown,
	CommandHome,
	CommandEnd,
}

// CommandMap maps keys to [Command]s. The zero value maps nothing.
type CommandMap struct {
	binds map[Command]*KeyBind
}

// NewCommandMap creates a [CommandMap] from the given bindings.
func NewCommandMap(binds map[Command]*KeyBind) *CommandMap {
	cm := &CommandMap{binds: make(map[Command]*KeyBind, len(binds))}
	for cmd, kb := range binds {
		if kb != nil {
			cm.binds[cmd] = kb
		}
	}

	return cm
}

// DefaultCommandMap returns a [CommandMap] with the default scroll bindings.
func DefaultCommandMap() *CommandMap {
	return NewCommandMap(DefaultScrollBinds().Map())
}

// Lookup returns the command bound to key.
func (cm *CommandMap) Lookup(key string) (Command, bool) {
	if cm == nil {
		return "", false
	}

	for _, cmd := range ScrollCommands {
		if cm.binds[cmd].Match(key) {
			return cmd, true
		}
	}

	for cmd, kb := range cm.binds {
		if kb.Match(key) {
			return cmd, true
		}
	}

	return "", false
}

// Bind returns the binding for cmd.
func (cm *CommandMap) Bind(cmd Command) (*KeyBind, bool) {
	if cm == nil {
		return nil, false
	}

	kb, ok := cm.binds[cmd]

	return kb, ok
}

// ScrollBinds are the key bindings for the scroll commands.
type ScrollBinds struct {
	Up       *KeyBind `json:"up,omitempty"       yaml:"up,omitempty"`
	Down     *KeyBind `json:"down,omitempty"     yaml:"down,omitempty"`
	PageUp   *KeyBind `json:"pageUp,omitempty"   yaml:"pageUp,omitempty"`
	PageDown *KeyBind `json:"pageDown,omitempty" yaml:"pageDown,omitempty"`
	Home     *KeyBind `json:"home,omitempty"     yaml:"home,omitempty"`
	End      *KeyBind `json:"end,omitempty"      yaml:"end,omitempty"`
}

// DefaultScrollBinds returns [ScrollBinds] with every binding set.
func DefaultScrollBinds() *ScrollBinds {
	kb := &ScrollBinds{}
	kb.EnsureDefaults()

	return kb
}

func (kb *ScrollBinds) EnsureDefaults() {
	SetDefaultBind(&kb.Up,
		NewBind("scroll up",
			New("up", WithAlias("↑")),
			New("k"),
		))
	SetDefaultBind(&kb.Down,
		NewBind("scroll down",
			New("down", WithAlias("↓")),
			New("j"),
		))
	SetDefaultBind(&kb.PageUp,
		NewBind("page up",
			New("pgup"),
			New("b"),
		))
	SetDefaultBind(&kb.PageDown,
		NewBind("page down",
			New("pgdown", WithAlias("pgdn")),
			New("f"),
			New(" ", WithAlias("space"), Hidden()),
		))
	SetDefaultBind(&kb.Home,
		NewBind("go to top",
			New("home"),
			New("g"),
		))
	SetDefaultBind(&kb.End,
		NewBind("go to bottom",
			New("end"),
			New("G"),
		))
}

func (kb *ScrollBinds) GetKeyBinds() []KeyBind {
	return []KeyBind{
		*kb.Up,
		*kb.Down,
		*kb.PageUp,
		*kb.PageDown,
		*kb.Home,
		*kb.End,
	}
}

// Map returns the bindings keyed by [Command].
func (kb *ScrollBinds) Map() map[Command]*KeyBind {
	return map[Command]*KeyBind{
		CommandUp:       kb.Up,
		CommandDown:     kb.Down,
		CommandPageUp:   kb.PageUp,
		CommandPageDown: kb.PageDown,
		CommandHome:     kb.Home,
		CommandEnd:      kb.End,
	}
}
