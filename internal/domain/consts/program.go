// Package consts holds shared program constants.
package consts

// Service defaults
const (
	DefaultPort      = "8832"
	DefaultStaticDir = "./web/dist"
)
