package main

// General API documentation for swaggo. Run `swag init -g cmd/flipd/docs.go -o docs`
// to regenerate the docs package.
//
// @title           flipd API
// @version         1.0
// @description     HTTP API for a windowed slot pool over a directory of items.
//
// @contact.name   flipd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
