package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var SpokePoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "anonymous": false,
    "inputs": [
      { "indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "destinationChainId", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "relayerFeePct", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "realizedLpFeePct", "type": "uint256" },
      { "indexed": false, "internalType": "address", "name": "originToken", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "destinationToken", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "recipient", "type": "address" },
      { "indexed": true, "internalType": "uint32", "name": "depositId", "type": "uint32" },
      { "indexed": true, "internalType": "address", "name": "depositor", "type": "address" }
    ],
    "name": "FundsDeposited",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "fillAmount", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "repaymentChainId", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "originChainId", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "relayerFeePct", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "realizedLpFeePct", "type": "uint256" },
      { "indexed": false, "internalType": "address", "name": "destinationToken", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "recipient", "type": "address" },
      { "indexed": false, "internalType": "bool", "name": "isSlowRelay", "type": "bool" },
      { "indexed": true, "internalType": "uint32", "name": "depositId", "type": "uint32" },
      { "indexed": true, "internalType": "address", "name": "relayer", "type": "address" }
    ],
    "name": "FilledRelay",
    "type": "event"
  },
  {
    "inputs": [
      {
        "components": [
          { "internalType": "address", "name": "depositor", "type": "address" },
          { "internalType": "address", "name": "recipient", "type": "address" },
          { "internalType": "address", "name": "destinationToken", "type": "address" },
          { "internalType": "uint256", "name": "amount", "type": "uint256" },
          { "internalType": "uint256", "name": "originChainId", "type": "uint256" },
          { "internalType": "uint256", "name": "destinationChainId", "type": "uint256" },
          { "internalType": "uint256", "name": "realizedLpFeePct", "type": "uint256" },
          { "internalType": "uint256", "name": "relayerFeePct", "type": "uint256" },
          { "internalType": "uint256", "name": "depositId", "type": "uint256" }
        ],
        "internalType": "struct SpokePool.RelayData",
        "name": "relayData",
        "type": "tuple"
      },
      { "internalType": "bytes32[]", "name": "proof", "type": "bytes32[]" }
    ],
    "name": "executeSlowRelayLeaf",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "chainId", "type": "uint256" },
          { "internalType": "uint32", "name": "leafId", "type": "uint32" },
          { "internalType": "uint32", "name": "chunkIndex", "type": "uint32" },
          { "internalType": "address[]", "name": "refundAddresses", "type": "address[]" },
          { "internalType": "uint256[]", "name": "refundAmounts", "type": "uint256[]" }
        ],
        "internalType": "struct SpokePool.RelayerRefundLeaf",
        "name": "leaf",
        "type": "tuple"
      },
      { "internalType": "bytes32[]", "name": "proof", "type": "bytes32[]" }
    ],
    "name": "executeRelayerRefundLeaf",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))
