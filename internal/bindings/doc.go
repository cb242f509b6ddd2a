// Package bindings loads a YAML description of schema types, their
// properties and the customizations attached to them, and builds the model
// the adapter customizer patches.
//
// # File Overview
//
//	version: "1"
//	# qualified name used by shorthand customizations (optional)
//	tag: "{urn:adapter-customizer:extras}xmlAdapter"
//	# adapters over types generated in the same run, which cannot be loaded
//	adapters:
//	  - name: example.com/gen/adapters.PriceAdapter
//	    wire: Amount
//	    value: example.com/money.Money
//	types:
//	  - name: Amount
//	    kind: class
//	    properties:
//	      - name: value
//	        kind: value
//	        type: decimal
//	      - name: currency
//	        kind: attribute
//	        type: string
//	  - name: Book
//	    kind: class
//	    properties:
//	      - name: price
//	        kind: element
//	        refs: Amount            # or a list: [Amount, Price]
//	        customizations:
//	          - example.com/gen/adapters.PriceAdapter   # shorthand
//	          - tag: "{urn:other}javaType"
//	            attrs: {name: Money}
//
// Types referenced but not declared are created as simple types.
// A customization written as a plain string is an adapter customization
// naming that type.
package bindings
