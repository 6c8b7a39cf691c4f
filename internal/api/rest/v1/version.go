package v1

// BasePath is the prefix of every JSON endpoint.
const BasePath = "/api"
