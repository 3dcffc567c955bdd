package version

// BuildVersion contains the build version. Set at build time.
var BuildVersion = "change_me"
