package config

type Upload struct {
	Dir         string `json:"dir" yaml:"dir"`                   // uploads 根目录
	MaxSizeMB   int    `json:"max_size_mb" yaml:"max_size_mb"`   // 单文件上限
	PublicPath  string `json:"public_path" yaml:"public_path"`   // 对外 URL 前缀
	ProductsDir string `json:"products_dir" yaml:"products_dir"` // 商品图子目录
}

func (u *Upload) MaxBytes() int64 {
	if u.MaxSizeMB <= 0 {
		return 5 << 20
	}
	return int64(u.MaxSizeMB) << 20
}

type RateLimit struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	ApiPerMinute    int `json:"api_per_minute" yaml:"api_per_minute"`     // 全部 /api
	LoginPerWindow  int `json:"login_per_window" yaml:"login_per_window"` // 15 分钟窗口
	RegisterPerHour int `json:"register_per_hour" yaml:"register_per_hour"`
}

type Review struct {
	// 开启后只有 done 订单里买过该商品的用户才能评价
	RequirePurchase bool `json:"require_purchase" yaml:"require_purchase"`
}
