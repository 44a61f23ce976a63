// Package config manages user-level settings stored at
// ~/.scriptsmith/config.yaml. It provides functions to load, read, and write
// configuration keys such as the preferred indentation width and the default
// level of detail.
package config
