//go:build linux

package evdev

import (
	"github.com/holoplot/go-evdev"

	"github.com/dshills/keychord/internal/key"
)

// codes maps kernel key codes to keys. Codes missing from the table are
// ignored by the reader.
var codes = map[evdev.EvCode]key.Key{
	evdev.KEY_ESC:              key.Esc,
	evdev.KEY_F1:               key.F1,
	evdev.KEY_F2:               key.F2,
	evdev.KEY_F3:               key.F3,
	evdev.KEY_F4:               key.F4,
	evdev.KEY_F5:               key.F5,
	evdev.KEY_F6:               key.F6,
	evdev.KEY_F7:               key.F7,
	evdev.KEY_F8:               key.F8,
	evdev.KEY_F9:               key.F9,
	evdev.KEY_F10:              key.F10,
	evdev.KEY_F11:              key.F11,
	evdev.KEY_F12:              key.F12,
	evdev.KEY_F13:              key.F13,
	evdev.KEY_F14:              key.F14,
	evdev.KEY_F15:              key.F15,
	evdev.KEY_F16:              key.F16,
	evdev.KEY_F17:              key.F17,
	evdev.KEY_F18:              key.F18,
	evdev.KEY_F19:              key.F19,
	evdev.KEY_F20:              key.F20,
	evdev.KEY_F21:              key.F21,
	evdev.KEY_F22:              key.F22,
	evdev.KEY_F23:              key.F23,
	evdev.KEY_F24:              key.F24,
	evdev.KEY_LEFTCTRL:         key.LeftCtrl,
	evdev.KEY_RIGHTCTRL:        key.RightCtrl,
	evdev.KEY_LEFTALT:          key.LeftAlt,
	evdev.KEY_RIGHTALT:         key.RightAlt,
	evdev.KEY_LEFTSHIFT:        key.LeftShift,
	evdev.KEY_RIGHTSHIFT:       key.RightShift,
	evdev.KEY_LEFTMETA:         key.LeftMeta,
	evdev.KEY_RIGHTMETA:        key.RightMeta,
	evdev.KEY_1:                key.N1,
	evdev.KEY_2:                key.N2,
	evdev.KEY_3:                key.N3,
	evdev.KEY_4:                key.N4,
	evdev.KEY_5:                key.N5,
	evdev.KEY_6:                key.N6,
	evdev.KEY_7:                key.N7,
	evdev.KEY_8:                key.N8,
	evdev.KEY_9:                key.N9,
	evdev.KEY_0:                key.N0,
	evdev.KEY_Q:                key.Q,
	evdev.KEY_W:                key.W,
	evdev.KEY_E:                key.E,
	evdev.KEY_R:                key.R,
	evdev.KEY_T:                key.T,
	evdev.KEY_Y:                key.Y,
	evdev.KEY_U:                key.U,
	evdev.KEY_I:                key.I,
	evdev.KEY_O:                key.O,
	evdev.KEY_P:                key.P,
	evdev.KEY_A:                key.A,
	evdev.KEY_S:                key.S,
	evdev.KEY_D:                key.D,
	evdev.KEY_F:                key.F,
	evdev.KEY_G:                key.G,
	evdev.KEY_H:                key.H,
	evdev.KEY_J:                key.J,
	evdev.KEY_K:                key.K,
	evdev.KEY_L:                key.L,
	evdev.KEY_Z:                key.Z,
	evdev.KEY_X:                key.X,
	evdev.KEY_C:                key.C,
	evdev.KEY_V:                key.V,
	evdev.KEY_B:                key.B,
	evdev.KEY_N:                key.N,
	evdev.KEY_M:                key.M,
	evdev.KEY_MINUS:            key.Minus,
	evdev.KEY_EQUAL:            key.Equal,
	evdev.KEY_BACKSPACE:        key.Backspace,
	evdev.KEY_TAB:              key.Tab,
	evdev.KEY_LEFTBRACE:        key.LeftBracket,
	evdev.KEY_RIGHTBRACE:       key.RightBracket,
	evdev.KEY_ENTER:            key.Enter,
	evdev.KEY_SEMICOLON:        key.Semicolon,
	evdev.KEY_APOSTROPHE:       key.Apostrophe,
	evdev.KEY_GRAVE:            key.Grave,
	evdev.KEY_BACKSLASH:        key.Backslash,
	evdev.KEY_COMMA:            key.Comma,
	evdev.KEY_DOT:              key.Dot,
	evdev.KEY_SLASH:            key.Slash,
	evdev.KEY_SPACE:            key.Space,
	evdev.KEY_CAPSLOCK:         key.CapsLock,
	evdev.KEY_NUMLOCK:          key.NumLock,
	evdev.KEY_SCROLLLOCK:       key.ScrollLock,
	evdev.KEY_KP0:              key.KP0,
	evdev.KEY_KP1:              key.KP1,
	evdev.KEY_KP2:              key.KP2,
	evdev.KEY_KP3:              key.KP3,
	evdev.KEY_KP4:              key.KP4,
	evdev.KEY_KP5:              key.KP5,
	evdev.KEY_KP6:              key.KP6,
	evdev.KEY_KP7:              key.KP7,
	evdev.KEY_KP8:              key.KP8,
	evdev.KEY_KP9:              key.KP9,
	evdev.KEY_KPENTER:          key.KPEnter,
	evdev.KEY_KPDOT:            key.KPDot,
	evdev.KEY_KPMINUS:          key.KPMinus,
	evdev.KEY_KPPLUS:           key.KPPlus,
	evdev.KEY_KPASTERISK:       key.KPAsterisk,
	evdev.KEY_KPSLASH:          key.KPSlash,
	evdev.KEY_KPJPCOMMA:        key.KPJPComma,
	evdev.KEY_ZENKAKUHANKAKU:   key.Zenkakuhankaku,
	evdev.KEY_RO:               key.Ro,
	evdev.KEY_KATAKANA:         key.Katakana,
	evdev.KEY_HIRAGANA:         key.Hiragana,
	evdev.KEY_HENKAN:           key.Henkan,
	evdev.KEY_KATAKANAHIRAGANA: key.Katakanahiragana,
	evdev.KEY_MUHENKAN:         key.Muhenkan,
	evdev.KEY_SYSRQ:            key.SysRq,
	evdev.KEY_LINEFEED:         key.Linefeed,
	evdev.KEY_HOME:             key.Home,
	evdev.KEY_UP:               key.Up,
	evdev.KEY_PAGEUP:           key.PageUp,
	evdev.KEY_LEFT:             key.Left,
	evdev.KEY_RIGHT:            key.Right,
	evdev.KEY_END:              key.End,
	evdev.KEY_DOWN:             key.Down,
	evdev.KEY_PAGEDOWN:         key.PageDown,
	evdev.KEY_INSERT:           key.Insert,
	evdev.KEY_DELETE:           key.Delete,
	evdev.KEY_MACRO:            key.Macro,
	evdev.KEY_MUTE:             key.Mute,
	evdev.KEY_VOLUMEDOWN:       key.VolumeDown,
	evdev.KEY_VOLUMEUP:         key.VolumeUp,
	evdev.KEY_POWER:            key.Power,
	evdev.KEY_KPEQUAL:          key.KPEqual,
	evdev.KEY_KPPLUSMINUS:      key.KPPlusMinus,
	evdev.KEY_PAUSE:            key.Pause,
	evdev.KEY_SCALE:            key.Scale,
	evdev.KEY_KPCOMMA:          key.KPComma,
	evdev.KEY_HANGEUL:          key.Hangeul,
	evdev.KEY_HANJA:            key.Hanja,
	evdev.KEY_YEN:              key.Yen,
	evdev.KEY_COMPOSE:          key.Compose,
	evdev.KEY_AGAIN:            key.Again,
	evdev.KEY_PROPS:            key.Props,
	evdev.KEY_UNDO:             key.Undo,
	evdev.KEY_FRONT:            key.Front,
	evdev.KEY_COPY:             key.Copy,
	evdev.KEY_OPEN:             key.Open,
	evdev.KEY_PASTE:            key.Paste,
	evdev.KEY_FIND:             key.Find,
	evdev.KEY_CUT:              key.Cut,
	evdev.KEY_HELP:             key.Help,
	evdev.KEY_MENU:             key.Menu,
	evdev.KEY_CALC:             key.Calc,
	evdev.KEY_SETUP:            key.Setup,
	evdev.KEY_SLEEP:            key.Sleep,
	evdev.KEY_WAKEUP:           key.Wakeup,
	evdev.KEY_FILE:             key.File,
	evdev.KEY_SENDFILE:         key.SendFile,
	evdev.KEY_DELETEFILE:       key.DeleteFile,
	evdev.KEY_XFER:             key.Xfer,
	evdev.KEY_PROG1:            key.Prog1,
	evdev.KEY_PROG2:            key.Prog2,
	evdev.KEY_WWW:              key.WWW,
	evdev.KEY_MSDOS:            key.MSDOS,
	evdev.KEY_COFFEE:           key.ScreenLock,
	evdev.KEY_ROTATE_DISPLAY:   key.RotateDisplay,
	evdev.KEY_CYCLEWINDOWS:     key.CycleWindows,
	evdev.KEY_MAIL:             key.Mail,
	evdev.KEY_BOOKMARKS:        key.Bookmarks,
	evdev.KEY_COMPUTER:         key.Computer,
	evdev.KEY_BACK:             key.Back,
	evdev.KEY_FORWARD:          key.Forward,
	evdev.KEY_CLOSECD:          key.CloseCD,
	evdev.KEY_EJECTCD:          key.EjectCD,
	evdev.KEY_EJECTCLOSECD:     key.EjectCloseCD,
	evdev.KEY_NEXTSONG:         key.NextSong,
	evdev.KEY_PLAYPAUSE:        key.PlayPause,
	evdev.KEY_PREVIOUSSONG:     key.PreviousSong,
	evdev.KEY_STOPCD:           key.StopCD,
	evdev.KEY_RECORD:           key.Record,
	evdev.KEY_REWIND:           key.Rewind,
	evdev.KEY_PHONE:            key.Phone,
	evdev.KEY_ISO:              key.Iso,
	evdev.KEY_CONFIG:           key.Config,
	evdev.KEY_HOMEPAGE:         key.Homepage,
	evdev.KEY_REFRESH:          key.Refresh,
	evdev.KEY_EXIT:             key.Exit,
	evdev.KEY_MOVE:             key.Move,
	evdev.KEY_EDIT:             key.Edit,
	evdev.KEY_SCROLLUP:         key.ScrollUp,
	evdev.KEY_SCROLLDOWN:       key.ScrollDown,
	evdev.KEY_KPLEFTPAREN:      key.KPLeftParen,
	evdev.KEY_KPRIGHTPAREN:     key.KPRightParen,
	evdev.KEY_NEW:              key.New,
	evdev.KEY_REDO:             key.Redo,
	evdev.KEY_PLAYCD:           key.PlayCD,
	evdev.KEY_PAUSECD:          key.PauseCD,
	evdev.KEY_PROG3:            key.Prog3,
	evdev.KEY_PROG4:            key.Prog4,
	evdev.KEY_DASHBOARD:        key.AllApplications,
	evdev.KEY_SUSPEND:          key.Suspend,
	evdev.KEY_CLOSE:            key.Close,
	evdev.KEY_PLAY:             key.Play,
	evdev.KEY_FASTFORWARD:      key.FastForward,
	evdev.KEY_BASSBOOST:        key.BassBoost,
	evdev.KEY_PRINT:            key.Print,
	evdev.KEY_HP:               key.Hp,
	evdev.KEY_CAMERA:           key.Camera,
	evdev.KEY_SOUND:            key.Sound,
	evdev.KEY_QUESTION:         key.Question,
	evdev.KEY_EMAIL:            key.Email,
	evdev.KEY_CHAT:             key.Chat,
	evdev.KEY_SEARCH:           key.Search,
	evdev.KEY_CONNECT:          key.Connect,
	evdev.KEY_FINANCE:          key.Finance,
	evdev.KEY_SPORT:            key.Sport,
	evdev.KEY_SHOP:             key.Shop,
	evdev.KEY_ALTERASE:         key.AltErase,
	evdev.KEY_CANCEL:           key.Cancel,
	evdev.KEY_BRIGHTNESSDOWN:   key.BrightnessDown,
	evdev.KEY_BRIGHTNESSUP:     key.BrightnessUp,
	evdev.KEY_MEDIA:            key.Media,
	evdev.KEY_SWITCHVIDEOMODE:  key.SwitchVideoMode,
	evdev.KEY_SEND:             key.Send,
	evdev.KEY_REPLY:            key.Reply,
	evdev.KEY_FORWARDMAIL:      key.ForwardMail,
	evdev.KEY_SAVE:             key.Save,
	evdev.KEY_DOCUMENTS:        key.Documents,
	evdev.KEY_BATTERY:          key.Battery,
	evdev.KEY_BLUETOOTH:        key.Bluetooth,
	evdev.KEY_WLAN:             key.WLAN,
	evdev.KEY_UWB:              key.UWB,
	evdev.KEY_VIDEO_NEXT:       key.VideoNext,
	evdev.KEY_VIDEO_PREV:       key.VideoPrev,
	evdev.KEY_BRIGHTNESS_CYCLE: key.BrightnessCycle,
	evdev.KEY_BRIGHTNESS_AUTO:  key.BrightnessAuto,
	evdev.KEY_DISPLAY_OFF:      key.DisplayOff,
	evdev.KEY_WWAN:             key.WWAN,
	evdev.KEY_RFKILL:           key.RFKill,
	evdev.KEY_MICMUTE:          key.MicMute,
}
