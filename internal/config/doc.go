// Package config manages user-level settings stored at ~/.create-my-app/config.yaml.
// Values resolve in viper's usual order: bound command-line flags, then
// CREATE_MY_APP_* environment variables, then the config file, then the
// defaults registered by Load.
package config
