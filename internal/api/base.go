package api

// DefaultBaseURL is the public API root used when no override is configured.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// DefaultEntryLimit matches the size of the full creature index.
const DefaultEntryLimit = 1277
