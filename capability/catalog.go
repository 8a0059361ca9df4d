package capability

// Catalog returns the full static table of parameters headsetcontrol
// understands. The device reports at startup which subset it actually
// implements; the registry is filtered down to that subset before any
// widgets are built.
//
// headsetcontrol's -t (read timeout) and -f (follow) options are program
// behavior, not headset parameters, and are deliberately absent.
func Catalog() *Registry {
	r := NewRegistry()

	r.Insert(Capability{
		Key:         's',
		Label:       "sidetone",
		Description: "Sets sidetone, level must be between 0 and 128",
		Kind:        ArgLargeRange,
		MaxValue:    128,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'b',
		Label:       "battery",
		Description: "Checks the battery level",
		Kind:        ArgNone,
		MaxValue:    100,
	})
	r.Insert(Capability{
		Key:         'n',
		Label:       "notificate",
		Description: "Makes the headset play a notification",
		Kind:        ArgLargeRange,
		MaxValue:    10,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'l',
		Label:       "light",
		Description: "Switch lights (0 = off, 1 = on)",
		Kind:        ArgBoolean,
		MaxValue:    1,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'i',
		Label:       "inactive-time",
		Description: "Sets inactive time in minutes, time must be between 0 and 90, 0 disables the feature",
		Kind:        ArgLargeRange,
		MaxValue:    90,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'm',
		Label:       "chatmix",
		Description: "Retrieves the current chat-mix-dial level setting between 0 and 128. Below 64 is the game side and above is the chat side",
		Kind:        ArgNone,
		MaxValue:    128,
	})
	r.Insert(Capability{
		Key:         'v',
		Label:       "voice-prompt",
		Description: "Turn voice prompts on or off (0 = off, 1 = on)",
		Kind:        ArgBoolean,
		MaxValue:    1,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'r',
		Label:       "rotate-to-mute",
		Description: "Turn rotate to mute feature on or off (0 = off, 1 = on)",
		Kind:        ArgBoolean,
		MaxValue:    1,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'e',
		Label:       "equalizer",
		Description: `Sets equalizer to specified curve, string must contain band values specific to the device (hex or decimal) delimited by spaces, or commas, or new-lines e.g "0x18, 0x18, 0x18, 0x18, 0x18"`,
		Kind:        ArgFreeText,
		Editable:    true,
	})
	r.Insert(Capability{
		Key:         'p',
		Label:       "equalizer-preset",
		Description: "Sets equalizer preset, number must be between 0 and 3, 0 sets the default",
		Kind:        ArgSmallRange,
		MaxValue:    3,
		Editable:    true,
	})

	return r
}
