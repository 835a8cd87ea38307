package reminder

// Channel is the closed set of delivery mechanisms a reminder may use.
// The zero value is unknown; values outside the set cannot be constructed.
type Channel struct {
	v string
}

var (
	ChannelUnknown          Channel = Channel{}
	ChannelEmail            Channel = Channel{v: "email"}
	ChannelSMS              Channel = Channel{v: "sms"}
	ChannelPushNotification Channel = Channel{v: "push_notification"}
)

func ParseChannel(value string) (Channel, error) {
	switch value {
	case "email":
		return ChannelEmail, nil
	case "sms":
		return ChannelSMS, nil
	case "push_notification":
		return ChannelPushNotification, nil
	default:
		return ChannelUnknown, ErrParseChannel
	}
}

func (c Channel) String() string {
	return c.v
}

func (c Channel) IsKnown() bool {
	return c != ChannelUnknown
}
