// Package key defines the closed set of physical keys reported by the
// input backends, and the static tables that resolve configured key names
// and alias groups into those keys.
package key

import "strconv"

// Key identifies one physical key. The zero value is Unknown and is never
// produced by a backend.
type Key uint16

// Physical keys, in the order of the Linux input event code table.
const (
	Unknown Key = iota
	Esc
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	LeftCtrl
	RightCtrl
	LeftAlt
	RightAlt
	LeftShift
	RightShift
	LeftMeta
	RightMeta
	N1
	N2
	N3
	N4
	N5
	N6
	N7
	N8
	N9
	N0
	Q
	W
	E
	R
	T
	Y
	U
	I
	O
	P
	A
	S
	D
	F
	G
	H
	J
	K
	L
	Z
	X
	C
	V
	B
	N
	M
	Minus
	Equal
	Backspace
	Tab
	LeftBracket
	RightBracket
	Enter
	Semicolon
	Apostrophe
	Grave
	Backslash
	Comma
	Dot
	Slash
	Space
	CapsLock
	NumLock
	ScrollLock
	KP0
	KP1
	KP2
	KP3
	KP4
	KP5
	KP6
	KP7
	KP8
	KP9
	KPEnter
	KPDot
	KPMinus
	KPPlus
	KPAsterisk
	KPSlash
	KPJPComma
	Zenkakuhankaku
	Ro
	Katakana
	Hiragana
	Henkan
	Katakanahiragana
	Muhenkan
	SysRq
	Linefeed
	Home
	Up
	PageUp
	Left
	Right
	End
	Down
	PageDown
	Insert
	Delete
	Macro
	Mute
	VolumeDown
	VolumeUp
	Power
	KPEqual
	KPPlusMinus
	Pause
	Scale
	KPComma
	Hangeul
	Hanja
	Yen
	Compose
	Again
	Props
	Undo
	Front
	Copy
	Open
	Paste
	Find
	Cut
	Help
	Menu
	Calc
	Setup
	Sleep
	Wakeup
	File
	SendFile
	DeleteFile
	Xfer
	Prog1
	Prog2
	WWW
	MSDOS
	ScreenLock
	RotateDisplay
	CycleWindows
	Mail
	Bookmarks
	Computer
	Back
	Forward
	CloseCD
	EjectCD
	EjectCloseCD
	NextSong
	PlayPause
	PreviousSong
	StopCD
	Record
	Rewind
	Phone
	Iso
	Config
	Homepage
	Refresh
	Exit
	Move
	Edit
	ScrollUp
	ScrollDown
	KPLeftParen
	KPRightParen
	New
	Redo
	PlayCD
	PauseCD
	Prog3
	Prog4
	AllApplications
	Suspend
	Close
	Play
	FastForward
	BassBoost
	Print
	Hp
	Camera
	Sound
	Question
	Email
	Chat
	Search
	Connect
	Finance
	Sport
	Shop
	AltErase
	Cancel
	BrightnessDown
	BrightnessUp
	Media
	SwitchVideoMode
	Send
	Reply
	ForwardMail
	Save
	Documents
	Battery
	Bluetooth
	WLAN
	UWB
	VideoNext
	VideoPrev
	BrightnessCycle
	BrightnessAuto
	DisplayOff
	WWAN
	RFKill
	MicMute
)

// count is one past the last valid key.
const count = int(MicMute) + 1

var displayNames = [count]string{
	Unknown:          "Unknown",
	Esc:              "Esc",
	F1:               "F1",
	F2:               "F2",
	F3:               "F3",
	F4:               "F4",
	F5:               "F5",
	F6:               "F6",
	F7:               "F7",
	F8:               "F8",
	F9:               "F9",
	F10:              "F10",
	F11:              "F11",
	F12:              "F12",
	F13:              "F13",
	F14:              "F14",
	F15:              "F15",
	F16:              "F16",
	F17:              "F17",
	F18:              "F18",
	F19:              "F19",
	F20:              "F20",
	F21:              "F21",
	F22:              "F22",
	F23:              "F23",
	F24:              "F24",
	LeftCtrl:         "LeftCtrl",
	RightCtrl:        "RightCtrl",
	LeftAlt:          "LeftAlt",
	RightAlt:         "RightAlt",
	LeftShift:        "LeftShift",
	RightShift:       "RightShift",
	LeftMeta:         "LeftMeta",
	RightMeta:        "RightMeta",
	N1:               "N1",
	N2:               "N2",
	N3:               "N3",
	N4:               "N4",
	N5:               "N5",
	N6:               "N6",
	N7:               "N7",
	N8:               "N8",
	N9:               "N9",
	N0:               "N0",
	Q:                "Q",
	W:                "W",
	E:                "E",
	R:                "R",
	T:                "T",
	Y:                "Y",
	U:                "U",
	I:                "I",
	O:                "O",
	P:                "P",
	A:                "A",
	S:                "S",
	D:                "D",
	F:                "F",
	G:                "G",
	H:                "H",
	J:                "J",
	K:                "K",
	L:                "L",
	Z:                "Z",
	X:                "X",
	C:                "C",
	V:                "V",
	B:                "B",
	N:                "N",
	M:                "M",
	Minus:            "Minus",
	Equal:            "Equal",
	Backspace:        "Backspace",
	Tab:              "Tab",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	Enter:            "Enter",
	Semicolon:        "Semicolon",
	Apostrophe:       "Apostrophe",
	Grave:            "Grave",
	Backslash:        "Backslash",
	Comma:            "Comma",
	Dot:              "Dot",
	Slash:            "Slash",
	Space:            "Space",
	CapsLock:         "CapsLock",
	NumLock:          "NumLock",
	ScrollLock:       "ScrollLock",
	KP0:              "KP0",
	KP1:              "KP1",
	KP2:              "KP2",
	KP3:              "KP3",
	KP4:              "KP4",
	KP5:              "KP5",
	KP6:              "KP6",
	KP7:              "KP7",
	KP8:              "KP8",
	KP9:              "KP9",
	KPEnter:          "KPEnter",
	KPDot:            "KPDot",
	KPMinus:          "KPMinus",
	KPPlus:           "KPPlus",
	KPAsterisk:       "KPAsterisk",
	KPSlash:          "KPSlash",
	KPJPComma:        "KPJPComma",
	Zenkakuhankaku:   "Zenkakuhankaku",
	Ro:               "Ro",
	Katakana:         "Katakana",
	Hiragana:         "Hiragana",
	Henkan:           "Henkan",
	Katakanahiragana: "Katakanahiragana",
	Muhenkan:         "Muhenkan",
	SysRq:            "SysRq",
	Linefeed:         "Linefeed",
	Home:             "Home",
	Up:               "Up",
	PageUp:           "PageUp",
	Left:             "Left",
	Right:            "Right",
	End:              "End",
	Down:             "Down",
	PageDown:         "PageDown",
	Insert:           "Insert",
	Delete:           "Delete",
	Macro:            "Macro",
	Mute:             "Mute",
	VolumeDown:       "VolumeDown",
	VolumeUp:         "VolumeUp",
	Power:            "Power",
	KPEqual:          "KPEqual",
	KPPlusMinus:      "KPPlusMinus",
	Pause:            "Pause",
	Scale:            "Scale",
	KPComma:          "KPComma",
	Hangeul:          "Hangeul",
	Hanja:            "Hanja",
	Yen:              "Yen",
	Compose:          "Compose",
	Again:            "Again",
	Props:            "Props",
	Undo:             "Undo",
	Front:            "Front",
	Copy:             "Copy",
	Open:             "Open",
	Paste:            "Paste",
	Find:             "Find",
	Cut:              "Cut",
	Help:             "Help",
	Menu:             "Menu",
	Calc:             "Calc",
	Setup:            "Setup",
	Sleep:            "Sleep",
	Wakeup:           "Wakeup",
	File:             "File",
	SendFile:         "SendFile",
	DeleteFile:       "DeleteFile",
	Xfer:             "Xfer",
	Prog1:            "Prog1",
	Prog2:            "Prog2",
	WWW:              "WWW",
	MSDOS:            "MSDOS",
	ScreenLock:       "ScreenLock",
	RotateDisplay:    "RotateDisplay",
	CycleWindows:     "CycleWindows",
	Mail:             "Mail",
	Bookmarks:        "Bookmarks",
	Computer:         "Computer",
	Back:             "Back",
	Forward:          "Forward",
	CloseCD:          "CloseCD",
	EjectCD:          "EjectCD",
	EjectCloseCD:     "EjectCloseCD",
	NextSong:         "NextSong",
	PlayPause:        "PlayPause",
	PreviousSong:     "PreviousSong",
	StopCD:           "StopCD",
	Record:           "Record",
	Rewind:           "Rewind",
	Phone:            "Phone",
	Iso:              "Iso",
	Config:           "Config",
	Homepage:         "Homepage",
	Refresh:          "Refresh",
	Exit:             "Exit",
	Move:             "Move",
	Edit:             "Edit",
	ScrollUp:         "ScrollUp",
	ScrollDown:       "ScrollDown",
	KPLeftParen:      "KPLeftParen",
	KPRightParen:     "KPRightParen",
	New:              "New",
	Redo:             "Redo",
	PlayCD:           "PlayCD",
	PauseCD:          "PauseCD",
	Prog3:            "Prog3",
	Prog4:            "Prog4",
	AllApplications:  "AllApplications",
	Suspend:          "Suspend",
	Close:            "Close",
	Play:             "Play",
	FastForward:      "FastForward",
	BassBoost:        "BassBoost",
	Print:            "Print",
	Hp:               "Hp",
	Camera:           "Camera",
	Sound:            "Sound",
	Question:         "Question",
	Email:            "Email",
	Chat:             "Chat",
	Search:           "Search",
	Connect:          "Connect",
	Finance:          "Finance",
	Sport:            "Sport",
	Shop:             "Shop",
	AltErase:         "AltErase",
	Cancel:           "Cancel",
	BrightnessDown:   "BrightnessDown",
	BrightnessUp:     "BrightnessUp",
	Media:            "Media",
	SwitchVideoMode:  "SwitchVideoMode",
	Send:             "Send",
	Reply:            "Reply",
	ForwardMail:      "ForwardMail",
	Save:             "Save",
	Documents:        "Documents",
	Battery:          "Battery",
	Bluetooth:        "Bluetooth",
	WLAN:             "WLAN",
	UWB:              "UWB",
	VideoNext:        "VideoNext",
	VideoPrev:        "VideoPrev",
	BrightnessCycle:  "BrightnessCycle",
	BrightnessAuto:   "BrightnessAuto",
	DisplayOff:       "DisplayOff",
	WWAN:             "WWAN",
	RFKill:           "RFKill",
	MicMute:          "MicMute",
}

// String returns the canonical display name of the key.
func (k Key) String() string {
	if int(k) < count {
		return displayNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a member of the physical key set.
func (k Key) Valid() bool {
	return k != Unknown && int(k) < count
}

// All returns every physical key in enumeration order.
func All() []Key {
	keys := make([]Key, 0, count-1)
	for k := Key(1); int(k) < count; k++ {
		keys = append(keys, k)
	}
	return keys
}
