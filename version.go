package treesearch

// Version is the release of the module and the CLI.
const Version = "0.3.0"
