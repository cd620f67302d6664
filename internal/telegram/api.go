// Package telegram holds the static facts about Telegram's client ecosystem
// that session codecs need: the published API identity profiles of the
// official clients and the default data-center endpoints.
package telegram

// APIProfile is the device identity a client presents to Telegram: the api_id
// under which keys are issued plus the device/app version strings. It is a
// plain immutable value; callers copy it by assignment.
type APIProfile struct {
	APIID          int32
	APIHash        string
	DeviceModel    string
	SystemVersion  string
	AppVersion     string
	LangCode       string
	SystemLangCode string
}

// Published identity profiles of the official Telegram clients.
var (
	TelegramDesktop = APIProfile{
		APIID:          17349,
		APIHash:        "344583e45741c457fe1862106095a5eb",
		DeviceModel:    "Desktop",
		SystemVersion:  "Windows 10",
		AppVersion:     "4.8.0",
		LangCode:       "en",
		SystemLangCode: "en-US",
	}

	TelegramAndroid = APIProfile{
		APIID:          4,
		APIHash:        "014b35b6184100b085b0d0572f9b5103",
		DeviceModel:    "Android",
		SystemVersion:  "SDK 23",
		AppVersion:     "9.7.0",
		LangCode:       "en",
		SystemLangCode: "en-US",
	}

	TelegramIOS = APIProfile{
		APIID:          8,
		APIHash:        "7245de8e747a0d6fbe11f7cc14fcc0bb",
		DeviceModel:    "iPhone",
		SystemVersion:  "iOS 15.0",
		AppVersion:     "9.7.0",
		LangCode:       "en",
		SystemLangCode: "en-US",
	}

	TelegramMacOS = APIProfile{
		APIID:          946,
		APIHash:        "5f3fb04eac560c6a3d7dd5cacb85e8b0",
		DeviceModel:    "Mac",
		SystemVersion:  "macOS 12.0",
		AppVersion:     "9.7.0",
		LangCode:       "en",
		SystemLangCode: "en-US",
	}
)

// CustomAPI builds a profile for a user-supplied api_id/api_hash pair, keeping
// the Desktop device strings.
func CustomAPI(apiID int32, apiHash string) APIProfile {
	p := TelegramDesktop
	p.APIID = apiID
	p.APIHash = apiHash
	return p
}
