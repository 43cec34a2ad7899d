package v1

// Version of the REST API
const Version = "v1"

// BasePath prefixes every route of this version
const BasePath = "/api/" + Version + "/cis"
