package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/blues/cfe/internal/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client 链客户端，封装托管账户和RPC连接
type Client struct {
	client        *ethclient.Client
	privateKey    *ecdsa.PrivateKey
	fromAddress   common.Address
	chainId       *big.Int
	confirmations int
}

// Init 连接链节点并装载托管账户
func Init(cfg config.ChainConfig) (*Client, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("failed to derive public key")
	}

	return &Client{
		client:        client,
		privateKey:    privateKey,
		fromAddress:   crypto.PubkeyToAddress(*publicKey),
		chainId:       big.NewInt(cfg.ChainId),
		confirmations: cfg.Confirmations,
	}, nil
}

// CurrentBlock 获取最新区块号
func (c *Client) CurrentBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest header: %w", err)
	}
	return header.Number.Uint64(), nil
}

// VerifyDeposit 校验一笔入金：交易存在、成功、打入托管账户、
// 金额一致且确认数足够。原生币贡献入账前调用。
func (c *Client) VerifyDeposit(ctx context.Context, txHash string, from string, amount int64) error {
	hash := common.HexToHash(txHash)

	tx, pending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("failed to get transaction %s: %w", txHash, err)
	}
	if pending {
		return errors.New("transaction is still pending")
	}

	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return fmt.Errorf("failed to get receipt for %s: %w", txHash, err)
	}
	if receipt.Status != 1 {
		return errors.New("transaction reverted")
	}

	current, err := c.CurrentBlock(ctx)
	if err != nil {
		return err
	}
	if current < receipt.BlockNumber.Uint64()+uint64(c.confirmations) {
		return fmt.Errorf("insufficient confirmations: need %d", c.confirmations)
	}

	if tx.To() == nil || *tx.To() != c.fromAddress {
		return errors.New("deposit recipient is not the custody account")
	}
	if tx.Value().Cmp(big.NewInt(amount)) != 0 {
		return fmt.Errorf("deposit amount mismatch: got %s, want %d", tx.Value(), amount)
	}

	sender, err := c.client.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
	if err != nil {
		return fmt.Errorf("failed to recover sender: %w", err)
	}
	if sender != common.HexToAddress(from) {
		return errors.New("deposit sender mismatch")
	}

	return nil
}
