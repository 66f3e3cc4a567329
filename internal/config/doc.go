// Package config manages user-level settings stored at ~/.create-mvc/config.yaml.
// Settings resolve flag > CREATE_MVC_* environment variable > config file >
// built-in default, and provide the scaffold's default port, package manager
// and install behaviour.
package config
