package acctl

var Version = "current"
