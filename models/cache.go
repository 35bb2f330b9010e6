package models

import "bitbucket.org/mmdatafocus/labregistry_backend/utils"

// listCacheKey derives the redis key caching an organization's list of T,
// e.g. "InstrumentList:<organizationId>". Mutations remove the key.
func listCacheKey[T any](organizationId string) string {
	return utils.GetTypeName[T]() + "List:" + organizationId
}
