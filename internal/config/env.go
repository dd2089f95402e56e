package config

import "time"

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"pubchem"`
	Service  string `mapstructure:"SERVICE" default:"api"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

type PubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
	// 每次请求后休眠，保证单个调用方每秒不超过 5 次请求
	Delay      time.Duration `mapstructure:"PUBCHEM_DELAY" default:"200ms"`
	Rate       float64       `mapstructure:"PUBCHEM_RATE" default:"5"`
	Timeout    time.Duration `mapstructure:"PUBCHEM_TIMEOUT" default:"30s"`
	MaxRecords int           `mapstructure:"PUBCHEM_MAX_RECORDS" default:"5"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}
