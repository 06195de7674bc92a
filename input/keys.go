package input

// Key is a logical control the client reacts to. Physical keys are mapped
// onto it by name; everything else is ignored.
type Key uint8

const (
	Up Key = iota
	Down
	Left
	Right
	Turbo

	keyCount
)

// Keys lists every logical key in declaration order.
var Keys = [keyCount]Key{Up, Down, Left, Right, Turbo}

func (k Key) String() string {
	switch k {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Turbo:
		return "turbo"
	default:
		return "unknown"
	}
}

var keyNames = map[string]Key{
	"ArrowUp":    Up,
	"ArrowDown":  Down,
	"ArrowLeft":  Left,
	"ArrowRight": Right,
	"Shift":      Turbo,
}

// KeyFromName maps a raw key name ("ArrowUp", "Shift", ...) to its logical
// key. The second result is false for names the client does not care about.
func KeyFromName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
