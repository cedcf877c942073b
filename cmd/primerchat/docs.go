package main

// General API documentation for swaggo. Run `swag init -g cmd/primerchat/docs.go`
// to regenerate the docs package served by `primerchat serve` under -tags=swagger.
//
// @title           primerchat API
// @version         1.0
// @description     HTTP API for the Primer conversational wrapper around local llama.cpp.
//
// @contact.name   primerchat maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
