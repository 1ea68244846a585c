package converter

import (
	"slot_machine_backend/internal/api/dto/game"
	"slot_machine_backend/internal/model"
)

func ToSpin(req game.SpinRequest) model.Spin {
	return model.Spin{
		Risk: req.Risk,
	}
}

func ToSpinResponse(res model.SpinResult) game.SpinResponse {
	return game.SpinResponse{
		Reels:      res.Reels,
		BasePayout: res.BasePayout,
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
		Jackpot:    res.Jackpot,
		Coins:      res.Coins,
		RealCoins:  res.RealCoins,
	}
}

func ToDataResponse(data model.Data) game.DataResponse {
	return game.DataResponse{
		Coins:                data.Coins,
		RealCoins:            data.RealCoins,
		EquippedBackgroundID: data.EquippedBackgroundID,
		PurchasedBackgrounds: data.PurchasedBackgrounds,
	}
}
