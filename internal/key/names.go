package key

// names maps lower-case configuration names to physical keys. Several names
// may resolve to the same key.
var names = map[string]Key{
	"esc":              Esc,
	"f1":               F1,
	"f2":               F2,
	"f3":               F3,
	"f4":               F4,
	"f5":               F5,
	"f6":               F6,
	"f7":               F7,
	"f8":               F8,
	"f9":               F9,
	"f10":              F10,
	"f11":              F11,
	"f12":              F12,
	"f13":              F13,
	"f14":              F14,
	"f15":              F15,
	"f16":              F16,
	"f17":              F17,
	"f18":              F18,
	"f19":              F19,
	"f20":              F20,
	"f21":              F21,
	"f22":              F22,
	"f23":              F23,
	"f24":              F24,
	"leftctrl":         LeftCtrl,
	"rightctrl":        RightCtrl,
	"leftalt":          LeftAlt,
	"rightalt":         RightAlt,
	"leftshift":        LeftShift,
	"rightshift":       RightShift,
	"leftmeta":         LeftMeta,
	"rightmeta":        RightMeta,
	"n1":               N1,
	"n2":               N2,
	"n3":               N3,
	"n4":               N4,
	"n5":               N5,
	"n6":               N6,
	"n7":               N7,
	"n8":               N8,
	"n9":               N9,
	"n0":               N0,
	"1":                N1,
	"2":                N2,
	"3":                N3,
	"4":                N4,
	"5":                N5,
	"6":                N6,
	"7":                N7,
	"8":                N8,
	"9":                N9,
	"0":                N0,
	"q":                Q,
	"w":                W,
	"e":                E,
	"r":                R,
	"t":                T,
	"y":                Y,
	"u":                U,
	"i":                I,
	"o":                O,
	"p":                P,
	"a":                A,
	"s":                S,
	"d":                D,
	"f":                F,
	"g":                G,
	"h":                H,
	"j":                J,
	"k":                K,
	"l":                L,
	"z":                Z,
	"x":                X,
	"c":                C,
	"v":                V,
	"b":                B,
	"n":                N,
	"m":                M,
	"minus":            Minus,
	"dash":             Minus,
	"equal":            Equal,
	"plus":             Equal,
	"backspace":        Backspace,
	"tab":              Tab,
	"leftbracket":      LeftBracket,
	"leftbrace":        LeftBracket,
	"rightbracket":     RightBracket,
	"rightbrace":       RightBracket,
	"enter":            Enter,
	"semicolon":        Semicolon,
	"apostrophe":       Apostrophe,
	"grave":            Grave,
	"tilde":            Grave,
	"backslash":        Backslash,
	"comma":            Comma,
	"dot":              Dot,
	"slash":            Slash,
	"space":            Space,
	"capslock":         CapsLock,
	"numlock":          NumLock,
	"scrolllock":       ScrollLock,
	"kp0":              KP0,
	"kp1":              KP1,
	"kp2":              KP2,
	"kp3":              KP3,
	"kp4":              KP4,
	"kp5":              KP5,
	"kp6":              KP6,
	"kp7":              KP7,
	"kp8":              KP8,
	"kp9":              KP9,
	"np0":              KP0,
	"np1":              KP1,
	"np2":              KP2,
	"np3":              KP3,
	"np4":              KP4,
	"np5":              KP5,
	"np6":              KP6,
	"np7":              KP7,
	"np8":              KP8,
	"np9":              KP9,
	"numpad0":          KP0,
	"numpad1":          KP1,
	"numpad2":          KP2,
	"numpad3":          KP3,
	"numpad4":          KP4,
	"numpad5":          KP5,
	"numpad6":          KP6,
	"numpad7":          KP7,
	"numpad8":          KP8,
	"numpad9":          KP9,
	"kpenter":          KPEnter,
	"npenter":          KPEnter,
	"numpadenter":      KPEnter,
	"kpdot":            KPDot,
	"kpminus":          KPMinus,
	"kpplus":           KPPlus,
	"kpasterisk":       KPAsterisk,
	"kpslash":          KPSlash,
	"kpjpcomma":        KPJPComma,
	"npdot":            KPDot,
	"npminus":          KPMinus,
	"npplus":           KPPlus,
	"npasterisk":       KPAsterisk,
	"npslash":          KPSlash,
	"npjpcomma":        KPJPComma,
	"numpaddot":        KPDot,
	"numpadminus":      KPMinus,
	"numpadplus":       KPPlus,
	"numpadasterisk":   KPAsterisk,
	"numpadslash":      KPSlash,
	"numpadjpcomma":    KPJPComma,
	"zenkakuhankaku":   Zenkakuhankaku,
	"ro":               Ro,
	"katakana":         Katakana,
	"hiragana":         Hiragana,
	"henkan":           Henkan,
	"katakanahiragana": Katakanahiragana,
	"muhenkan":         Muhenkan,
	"sysrq":            SysRq,
	"linefeed":         Linefeed,
	"home":             Home,
	"up":               Up,
	"uparrow":          Up,
	"pageup":           PageUp,
	"left":             Left,
	"leftarrow":        Left,
	"right":            Right,
	"rightarrow":       Right,
	"end":              End,
	"down":             Down,
	"downarrow":        Down,
	"pagedown":         PageDown,
	"insert":           Insert,
	"delete":           Delete,
	"macro":            Macro,
	"mute":             Mute,
	"volumedown":       VolumeDown,
	"volumeup":         VolumeUp,
	"power":            Power,
	"kpequal":          KPEqual,
	"kpplusminus":      KPPlusMinus,
	"pause":            Pause,
	"scale":            Scale,
	"kpcomma":          KPComma,
	"hangeul":          Hangeul,
	"hanja":            Hanja,
	"yen":              Yen,
	"compose":          Compose,
	"again":            Again,
	"props":            Props,
	"undo":             Undo,
	"front":            Front,
	"copy":             Copy,
	"open":             Open,
	"paste":            Paste,
	"find":             Find,
	"cut":              Cut,
	"help":             Help,
	"menu":             Menu,
	"calc":             Calc,
	"calculator":       Calc,
	"setup":            Setup,
	"sleep":            Sleep,
	"wakeup":           Wakeup,
	"file":             File,
	"sendfile":         SendFile,
	"deletefile":       DeleteFile,
	"xfer":             Xfer,
	"prog1":            Prog1,
	"prog2":            Prog2,
	"www":              WWW,
	"msdos":            MSDOS,
	"screenlock":       ScreenLock,
	"rotatedisplay":    RotateDisplay,
	"cyclewindows":     CycleWindows,
	"mail":             Mail,
	"bookmarks":        Bookmarks,
	"computer":         Computer,
	"back":             Back,
	"forward":          Forward,
	"closecd":          CloseCD,
	"ejectcd":          EjectCD,
	"ejectclosecd":     EjectCloseCD,
	"nextsong":         NextSong,
	"playpause":        PlayPause,
	"previoussong":     PreviousSong,
	"stopcd":           StopCD,
	"record":           Record,
	"rewind":           Rewind,
	"phone":            Phone,
	"iso":              Iso,
	"config":           Config,
	"homepage":         Homepage,
	"refresh":          Refresh,
	"exit":             Exit,
	"move":             Move,
	"edit":             Edit,
	"scrollup":         ScrollUp,
	"scrolldown":       ScrollDown,
	"kpleftparen":      KPLeftParen,
	"kprightparen":     KPRightParen,
	"new":              New,
	"redo":             Redo,
	"playcd":           PlayCD,
	"pausecd":          PauseCD,
	"prog3":            Prog3,
	"prog4":            Prog4,
	"allapplications":  AllApplications,
	"suspend":          Suspend,
	"close":            Close,
	"play":             Play,
	"fastforward":      FastForward,
	"bassboost":        BassBoost,
	"print":            Print,
	"hp":               Hp,
	"camera":           Camera,
	"sound":            Sound,
	"question":         Question,
	"email":            Email,
	"chat":             Chat,
	"search":           Search,
	"connect":          Connect,
	"finance":          Finance,
	"sport":            Sport,
	"shop":             Shop,
	"alterase":         AltErase,
	"cancel":           Cancel,
	"brightnessdown":   BrightnessDown,
	"brightnessup":     BrightnessUp,
	"media":            Media,
	"switchvideomode":  SwitchVideoMode,
	"send":             Send,
	"reply":            Reply,
	"forwardmail":      ForwardMail,
	"save":             Save,
	"documents":        Documents,
	"battery":          Battery,
	"bluetooth":        Bluetooth,
	"wlan":             WLAN,
	"uwb":              UWB,
	"videonext":        VideoNext,
	"videoprev":        VideoPrev,
	"brightnesscycle":  BrightnessCycle,
	"brightnessauto":   BrightnessAuto,
	"displayoff":       DisplayOff,
	"wwan":             WWAN,
	"rfkill":           RFKill,
	"micmute":          MicMute,
}

// groups maps alias names to every physical key they stand for.
var groups = map[string][]Key{
	"ctrl":  {LeftCtrl, RightCtrl},
	"alt":   {LeftAlt, RightAlt},
	"shift": {LeftShift, RightShift},
	"meta":  {LeftMeta, RightMeta},
}
