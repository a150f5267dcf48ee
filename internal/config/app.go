package config

import "os"

const defaultAddr = ":8080"

// Addr is the address the websocket server listens on.
func Addr() string {
	addr, ok := os.LookupEnv("APP_PORT")
	if !ok || addr == "" {
		return defaultAddr
	}
	return addr
}
