package installer

// EnvFile is the configuration the wizard collects, marshaled to the
// runtime .env through the env tags. Zero values are omitted so defaults
// stay in code.
type EnvFile struct {
	ProviderOrder   string `env:"JARVIS_PROVIDER_ORDER"`
	HFToken         string `env:"HF_TOKEN"`
	OpenRouterKey   string `env:"OPENROUTER_API_KEY"`
	TelegramToken   string `env:"TELEGRAM_TOKEN"`
	TelegramOwnerID string `env:"TELEGRAM_OWNER_ID"`
	EnableTelegram  bool   `env:"JARVIS_ENABLE_TELEGRAM"`
	TTSOnline       string `env:"JARVIS_TTS_ONLINE_COMMAND"`
	TTSOffline      string `env:"JARVIS_TTS_OFFLINE_COMMAND"`
}

type InstallState struct {
	Env EnvFile
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
