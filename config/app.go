package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	Name  string `json:"name" yaml:"name"`
}

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpireHours int    `json:"expire_hours" yaml:"expire_hours"` // 默认 7 天
}

func (j *Jwt) Expire() int {
	if j.ExpireHours <= 0 {
		return 24 * 7
	}
	return j.ExpireHours
}
