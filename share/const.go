package share

// VERSION Agenda Version
const VERSION = "0.3.0"

// PRVERSION Agenda PR Commit
const PRVERSION = "DEV"

// BUILDNAME The name of the artifact
const BUILDNAME = "agenda"
