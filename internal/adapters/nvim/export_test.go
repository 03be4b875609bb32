// export_test.go exports private functions for white-box testing.
package nvim

var (
	OpenCommands  = openCommands
	QuickfixItems = quickfixItems
	TypeChunk     = typeChunk
	CallChunk     = callChunk
)
