package mall

// Config holds storefront client settings. In the browser build the environment
// is empty and the defaults apply unless the host overrides them.
type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"storefront" yaml:"app_name"`
	Env            string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	BasePath       string `env:"BASE_PATH" envDefault:"/" yaml:"base_path"`
	RootSelector   string `env:"ROOT_SELECTOR" envDefault:"#root" yaml:"root_selector"`
	APIBaseURL     string `env:"API_BASE_URL" envDefault:"/api" yaml:"api_base_url"`
	CartStorageKey string `env:"CART_STORAGE_KEY" envDefault:"shopping_cart" yaml:"cart_storage_key"`
	PageSize       int    `env:"PAGE_SIZE" envDefault:"20" yaml:"page_size"`
}
