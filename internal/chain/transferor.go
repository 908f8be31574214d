package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ERC20转账ABI（最小子集）
const erc20ABI = `[
	{
		"name": "transfer",
		"type": "function",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"name": "transferFrom",
		"type": "function",
		"inputs": [
			{"name": "from", "type": "address"},
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`

const txTimeout = 30 * time.Second

// EthTransferor 链上资金转移器。托管账户持有全部在管资金，
// Transfer从托管账户支付，Pull通过transferFrom把代币拉入托管。
type EthTransferor struct {
	client   *Client
	tokenABI abi.ABI
}

// NewEthTransferor 创建链上转移器
func NewEthTransferor(client *Client) (*EthTransferor, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 abi: %w", err)
	}
	return &EthTransferor{client: client, tokenABI: parsed}, nil
}

// Transfer 从托管账户向接收方支付
func (t *EthTransferor) Transfer(asset engine.Asset, recipient string, amount int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()

	var err error
	switch asset.Kind {
	case engine.AssetNative:
		err = t.sendNative(ctx, common.HexToAddress(recipient), big.NewInt(amount))
	case engine.AssetToken:
		to := common.HexToAddress(recipient)
		var data []byte
		data, err = t.tokenABI.Pack("transfer", to, big.NewInt(amount))
		if err == nil {
			err = t.sendCall(ctx, common.HexToAddress(asset.Token), data)
		}
	default:
		return engine.ErrInvalidParameters
	}

	if err != nil {
		logger.Error("Transfer of %d to %s failed: %v", amount, recipient, err)
		return engine.ErrTransferFailed
	}
	return nil
}

// Pull 把贡献者的代币拉入托管账户，需要贡献者事先approve。
// 原生币入金走链上存款校验，不经过Pull。
func (t *EthTransferor) Pull(asset engine.Asset, from string, amount int64) error {
	if asset.Kind != engine.AssetToken {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()

	data, err := t.tokenABI.Pack("transferFrom",
		common.HexToAddress(from), t.client.fromAddress, big.NewInt(amount))
	if err == nil {
		err = t.sendCall(ctx, common.HexToAddress(asset.Token), data)
	}

	if err != nil {
		logger.Error("Pull of %d from %s failed: %v", amount, from, err)
		return engine.ErrTransferFailed
	}
	return nil
}

// sendNative 发送原生币转账并等待上链
func (t *EthTransferor) sendNative(ctx context.Context, to common.Address, value *big.Int) error {
	nonce, err := t.client.client.PendingNonceAt(ctx, t.client.fromAddress)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := t.client.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to get gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, to, value, 21000, gasPrice, nil)
	return t.signAndSend(ctx, tx)
}

// sendCall 发送合约调用交易并等待上链
func (t *EthTransferor) sendCall(ctx context.Context, contract common.Address, data []byte) error {
	nonce, err := t.client.client.PendingNonceAt(ctx, t.client.fromAddress)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := t.client.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := t.client.client.EstimateGas(ctx, ethereum.CallMsg{
		From: t.client.fromAddress,
		To:   &contract,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTransaction(nonce, contract, big.NewInt(0), gasLimit, gasPrice, data)
	return t.signAndSend(ctx, tx)
}

// signAndSend 签名、广播并等待回执
func (t *EthTransferor) signAndSend(ctx context.Context, tx *types.Transaction) error {
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(t.client.chainId), t.client.privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.client.client.SendTransaction(ctx, signedTx); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	// 轮询回执直到上链或超时
	for {
		receipt, err := t.client.client.TransactionReceipt(ctx, signedTx.Hash())
		if err == nil {
			if receipt.Status != 1 {
				return fmt.Errorf("transaction %s reverted", signedTx.Hash().Hex())
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for transaction %s", signedTx.Hash().Hex())
		case <-time.After(2 * time.Second):
		}
	}
}

// DevTransferor 开发模式转移器，只记日志不上链。
// 未配置RPC节点时使用，便于本地联调。
type DevTransferor struct{}

// Transfer 记录支付日志
func (DevTransferor) Transfer(asset engine.Asset, recipient string, amount int64) error {
	logger.Info("[dev] transfer %d (%s) to %s", amount, asset.Kind, recipient)
	return nil
}

// Pull 记录拉取日志
func (DevTransferor) Pull(asset engine.Asset, from string, amount int64) error {
	logger.Info("[dev] pull %d (%s) from %s", amount, asset.Kind, from)
	return nil
}

// 确保实现了引擎接口
var _ engine.Transferor = (*EthTransferor)(nil)
var _ engine.Transferor = DevTransferor{}
