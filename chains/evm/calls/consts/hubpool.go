package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var HubPoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "uint256[]", "name": "bundleEvaluationBlockNumbers", "type": "uint256[]" },
      { "internalType": "bytes32", "name": "poolRebalanceRoot", "type": "bytes32" },
      { "internalType": "bytes32", "name": "relayerRefundRoot", "type": "bytes32" },
      { "internalType": "bytes32", "name": "slowRelayRoot", "type": "bytes32" }
    ],
    "name": "proposeRootBundle",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "chainId", "type": "uint256" },
          { "internalType": "uint32", "name": "groupIndex", "type": "uint32" },
          { "internalType": "uint32", "name": "leafId", "type": "uint32" },
          { "internalType": "address[]", "name": "l1Tokens", "type": "address[]" },
          { "internalType": "uint256[]", "name": "bundleLpFees", "type": "uint256[]" },
          { "internalType": "int256[]", "name": "netSendAmounts", "type": "int256[]" },
          { "internalType": "int256[]", "name": "runningBalances", "type": "int256[]" }
        ],
        "internalType": "struct HubPool.PoolRebalanceLeaf",
        "name": "leaf",
        "type": "tuple"
      },
      { "internalType": "bytes32[]", "name": "proof", "type": "bytes32[]" }
    ],
    "name": "executePoolRebalanceLeaf",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))
