package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title Linkscope API
// @version 0.1
// @description Interactive documentation for the linkscope URL scoring API surface.
// @contact.name Linkscope Maintainers
// @contact.url https://github.com/raysh454/linkscope
// @BasePath /
