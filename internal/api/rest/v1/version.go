package v1

// BasePath is the URL prefix of every version 1 route
const BasePath = "/api/v1/servicehub"
